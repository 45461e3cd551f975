package infra

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func archivoSubido(t *testing.T, filename string, contenido []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("foto", filename)
	require.NoError(t, err)
	_, err = fw.Write(contenido)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["foto"][0]
}

func pngContenido(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

func TestGuardar(t *testing.T) {
	dir := t.TempDir()
	s := NewFotoStore(dir)

	url, err := s.Guardar(archivoSubido(t, "mi equipo.png", pngContenido(t)))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/static/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))
	// The unsafe space is replaced, the stem survives.
	assert.Contains(t, url, "mi_equipo")

	_, err = os.Stat(filepath.Join(dir, filepath.Base(url)))
	require.NoError(t, err)
}

func TestGuardar_NombresUnicos(t *testing.T) {
	s := NewFotoStore(t.TempDir())

	url1, err := s.Guardar(archivoSubido(t, "equipo.png", pngContenido(t)))
	require.NoError(t, err)
	url2, err := s.Guardar(archivoSubido(t, "equipo.png", pngContenido(t)))
	require.NoError(t, err)

	assert.NotEqual(t, url1, url2)
}

func TestGuardar_ExtensionNoPermitida(t *testing.T) {
	s := NewFotoStore(t.TempDir())

	_, err := s.Guardar(archivoSubido(t, "nota.txt", []byte("hola")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extension no permitida")
}

func TestGuardar_ContenidoFalsificado(t *testing.T) {
	s := NewFotoStore(t.TempDir())

	// Extension says PNG, bytes say otherwise — the sniffer wins.
	_, err := s.Guardar(archivoSubido(t, "falso.png", []byte("no soy un png")))
	require.Error(t, err)
}

func TestEliminar_Idempotente(t *testing.T) {
	dir := t.TempDir()
	s := NewFotoStore(dir)

	url, err := s.Guardar(archivoSubido(t, "equipo.png", pngContenido(t)))
	require.NoError(t, err)

	require.NoError(t, s.Eliminar(url))
	_, err = os.Stat(filepath.Join(dir, filepath.Base(url)))
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, s.Eliminar(url))
}
