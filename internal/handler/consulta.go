package handler

import (
	"net/http"

	"github.com/44Loqueinor12345/Inventario/internal/service"

	"github.com/gin-gonic/gin"
)

// ConsultaHandler serves barcode lookups.
type ConsultaHandler struct {
	consulta service.ConsultaService
}

func NewConsultaHandler(consulta service.ConsultaService) *ConsultaHandler {
	return &ConsultaHandler{consulta: consulta}
}

// Buscar resolves a submitted barcode into the matching record, its kind and
// its group.
func (h *ConsultaHandler) Buscar(c *gin.Context) {
	codigo := c.PostForm("codigo_barras")
	resp, err := h.consulta.BuscarPorCodigo(c.Request.Context(), codigo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
