package handler

import (
	"fmt"
	"net/http"

	"github.com/44Loqueinor12345/Inventario/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ExportHandler streams filtered inventory views as an xlsx download.
type ExportHandler struct {
	export service.ExportService
}

func NewExportHandler(export service.ExportService) *ExportHandler {
	return &ExportHandler{export: export}
}

func (h *ExportHandler) Exportar(c *gin.Context) {
	grupo := c.DefaultQuery("grupo", service.FiltroTodos)
	tipo := c.DefaultQuery("tipo", service.FiltroTodos)

	f, nombre, err := h.export.Exportar(c.Request.Context(), grupo, tipo)
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, nombre))
	c.Status(http.StatusOK)
	if _, err := f.WriteTo(c.Writer); err != nil {
		// Headers are gone at this point; just log the broken stream.
		log.Error().Err(err).Msg("error escribiendo exportación")
	}
}
