package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/44Loqueinor12345/Inventario/internal/config"
	"github.com/44Loqueinor12345/Inventario/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:        0,
		Env:         "development",
		UploadDir:   t.TempDir(),
		BarcodeDir:  t.TempDir(),
		MaxUploadMB: 16,
	}
	db, err := infra.NewDatabase(":memory:")
	require.NoError(t, err)

	return New(cfg, db)
}

func postForm(t *testing.T, r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func formDispositivo() url.Values {
	return url.Values{
		"tipo":        {"dispositivo"},
		"grupo_id":    {"1"},
		"responsable": {"Ana"},
		"marca":       {"Acme"},
		"vpn":         {"No tiene"},
		"room":        {"R1"},
		"pais":        {"MX"},
		"costo":       {"199.99"},
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w := get(t, r, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestPaginas(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	w = get(t, r, "/grupos")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "EC")
	assert.Contains(t, w.Body.String(), "ALMACEN")

	w = get(t, r, "/productos/agregar")
	require.Equal(t, http.StatusOK, w.Code)
	w = get(t, r, "/productos/buscar")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAgregarYBuscar(t *testing.T) {
	r := newTestRouter(t)

	w := postForm(t, r, "/productos/agregar", formDispositivo())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var alta struct {
		Success      bool   `json:"success"`
		CodigoBarras string `json:"codigo_barras"`
		BarcodeImage string `json:"barcode_image"`
		Grupo        string `json:"grupo"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &alta))
	assert.True(t, alta.Success)
	assert.Len(t, alta.CodigoBarras, 12)
	assert.Equal(t, "EC", alta.Grupo)
	assert.NotEmpty(t, alta.BarcodeImage)

	// The rendered image is served back under /static/barcodes.
	w = get(t, r, alta.BarcodeImage)
	require.Equal(t, http.StatusOK, w.Code)

	w = postForm(t, r, "/productos/buscar", url.Values{"codigo_barras": {alta.CodigoBarras}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"tipo":"dispositivo"`)
	assert.Contains(t, w.Body.String(), `"grupo_nombre":"EC"`)

	// And the group page now lists the device.
	w = get(t, r, "/grupos/EC")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ana")
}

func TestAgregar_CamposFaltantes(t *testing.T) {
	r := newTestRouter(t)

	form := formDispositivo()
	form.Del("responsable")
	w := postForm(t, r, "/productos/agregar", form)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `\"responsable\"`)
}

func TestAgregar_TipoDesconocido(t *testing.T) {
	r := newTestRouter(t)

	form := formDispositivo()
	form.Set("tipo", "vehiculo")
	w := postForm(t, r, "/productos/agregar", form)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEditarYEliminar(t *testing.T) {
	r := newTestRouter(t)

	w := postForm(t, r, "/productos/agregar", formDispositivo())
	require.Equal(t, http.StatusOK, w.Code)

	var alta struct {
		CodigoBarras string `json:"codigo_barras"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &alta))

	w = postForm(t, r, "/productos/buscar", url.Values{"codigo_barras": {alta.CodigoBarras}})
	require.Equal(t, http.StatusOK, w.Code)

	var busqueda struct {
		Dispositivo struct {
			ID uint `json:"id"`
		} `json:"dispositivo"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &busqueda))
	require.NotZero(t, busqueda.Dispositivo.ID)

	edicion := url.Values{
		"grupo_id":    {"2"},
		"responsable": {"Beto"},
		"marca":       {"Acme"},
		"vpn":         {"No tiene"},
		"room":        {"R2"},
		"pais":        {"MX"},
		"costo":       {"250"},
	}
	w = postForm(t, r, fmt.Sprintf("/productos/dispositivo/%d/editar", busqueda.Dispositivo.ID), edicion)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Producto actualizado correctamente")

	w = postForm(t, r, fmt.Sprintf("/productos/dispositivo/%d/eliminar", busqueda.Dispositivo.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Producto eliminado correctamente")

	// The barcode no longer resolves.
	w = postForm(t, r, "/productos/buscar", url.Values{"codigo_barras": {alta.CodigoBarras}})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGrupoDesconocido(t *testing.T) {
	r := newTestRouter(t)
	w := get(t, r, "/grupos/NOEXISTE")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportar(t *testing.T) {
	r := newTestRouter(t)

	w := postForm(t, r, "/productos/agregar", formDispositivo())
	require.Equal(t, http.StatusOK, w.Code)

	w = get(t, r, "/exportar?grupo=EC")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "inventario_EC.xlsx")
	assert.NotZero(t, w.Body.Len())

	w = get(t, r, "/exportar?tipo=otros")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerarCodigos(t *testing.T) {
	r := newTestRouter(t)

	w := postForm(t, r, "/codigos/generar", url.Values{"cantidad": {"3"}})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool     `json:"success"`
		Codigos []string `json:"codigos"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Codigos, 3)
	for _, codigo := range resp.Codigos {
		assert.Len(t, codigo, 12)
	}
}

func TestRequestIDEnRespuesta(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/health")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
