package handler

import (
	"net/http"
	"strconv"

	"github.com/44Loqueinor12345/Inventario/internal/apierror"
	"github.com/44Loqueinor12345/Inventario/internal/dto"
	"github.com/44Loqueinor12345/Inventario/internal/model"
	"github.com/44Loqueinor12345/Inventario/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductosHandler covers creation, edit and deletion for the three record
// kinds. The shared creation form posts a "tipo" discriminator; everything
// after that dispatch is typed per kind.
type ProductosHandler struct {
	dispositivos service.DispositivoService
	productos    service.ProductoVentaService
	materiales   service.MaterialGeneralService
}

func NewProductosHandler(
	dispositivos service.DispositivoService,
	productos service.ProductoVentaService,
	materiales service.MaterialGeneralService,
) *ProductosHandler {
	return &ProductosHandler{
		dispositivos: dispositivos,
		productos:    productos,
		materiales:   materiales,
	}
}

// Agregar handles the creation form post.
func (h *ProductosHandler) Agregar(c *gin.Context) {
	tipo, err := model.ParseTipoItem(c.PostForm("tipo"))
	if err != nil {
		respondError(c, apierror.Validation("tipo", "Error: Tipo de producto desconocido"))
		return
	}

	switch tipo {
	case model.TipoDispositivo:
		var req dto.CrearDispositivoRequest
		if !bindAndValidate(c, &req) {
			return
		}
		// Optional photo — absent on most uploads.
		foto, _ := c.FormFile("foto")
		resp, err := h.dispositivos.Crear(c.Request.Context(), req, foto)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)

	case model.TipoProductoVenta:
		var req dto.CrearProductoVentaRequest
		if !bindAndValidate(c, &req) {
			return
		}
		resp, err := h.productos.Crear(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)

	case model.TipoMaterialGeneral:
		var req dto.CrearMaterialGeneralRequest
		if !bindAndValidate(c, &req) {
			return
		}
		resp, err := h.materiales.Crear(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// Editar applies a full-row update to the record named by tipo and id.
func (h *ProductosHandler) Editar(c *gin.Context) {
	tipo, id, ok := h.tipoYID(c)
	if !ok {
		return
	}

	var err error
	switch tipo {
	case model.TipoDispositivo:
		var req dto.ActualizarDispositivoRequest
		if !bindAndValidate(c, &req) {
			return
		}
		err = h.dispositivos.Actualizar(c.Request.Context(), id, req)
	case model.TipoProductoVenta:
		var req dto.ActualizarProductoVentaRequest
		if !bindAndValidate(c, &req) {
			return
		}
		err = h.productos.Actualizar(c.Request.Context(), id, req)
	case model.TipoMaterialGeneral:
		var req dto.ActualizarMaterialGeneralRequest
		if !bindAndValidate(c, &req) {
			return
		}
		err = h.materiales.Actualizar(c.Request.Context(), id, req)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Producto actualizado correctamente"})
}

// Eliminar removes the record and its artifacts.
func (h *ProductosHandler) Eliminar(c *gin.Context) {
	tipo, id, ok := h.tipoYID(c)
	if !ok {
		return
	}

	var err error
	switch tipo {
	case model.TipoDispositivo:
		err = h.dispositivos.Eliminar(c.Request.Context(), id)
	case model.TipoProductoVenta:
		err = h.productos.Eliminar(c.Request.Context(), id)
	case model.TipoMaterialGeneral:
		err = h.materiales.Eliminar(c.Request.Context(), id)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Producto eliminado correctamente"})
}

func (h *ProductosHandler) tipoYID(c *gin.Context) (model.TipoItem, uint, bool) {
	tipo, err := model.ParseTipoItem(c.Param("tipo"))
	if err != nil {
		respondError(c, apierror.Validation("tipo", "Error: Tipo de producto desconocido"))
		return "", 0, false
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, apierror.Validation("id", "Error: ID inválido"))
		return "", 0, false
	}
	return tipo, uint(id), true
}
