package handler

import (
	"net/http"
	"strconv"

	"github.com/44Loqueinor12345/Inventario/internal/dto"
	"github.com/44Loqueinor12345/Inventario/internal/service"

	"github.com/gin-gonic/gin"
)

// CodigosHandler exposes batch barcode generation for pre-printing labels.
type CodigosHandler struct {
	codigos service.CodigoService
}

func NewCodigosHandler(codigos service.CodigoService) *CodigosHandler {
	return &CodigosHandler{codigos: codigos}
}

func (h *CodigosHandler) Generar(c *gin.Context) {
	cantidad, err := strconv.Atoi(c.DefaultPostForm("cantidad", "1"))
	if err != nil || cantidad < 1 {
		cantidad = 1
	}
	codigos, err := h.codigos.GenerarLote(c.Request.Context(), cantidad)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CodigosResponse{Success: true, Codigos: codigos})
}
