package handler

import (
	"net/http"

	"github.com/44Loqueinor12345/Inventario/internal/repository"
	"github.com/44Loqueinor12345/Inventario/internal/service"

	"github.com/gin-gonic/gin"
)

// PaginasHandler renders the server-side HTML pages. Pages are thin: they
// list groups and records and host the creation/search forms; all mutations
// go through the JSON endpoints.
type PaginasHandler struct {
	grupos   repository.GrupoRepository
	consulta service.ConsultaService
}

func NewPaginasHandler(grupos repository.GrupoRepository, consulta service.ConsultaService) *PaginasHandler {
	return &PaginasHandler{grupos: grupos, consulta: consulta}
}

func (h *PaginasHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

func (h *PaginasHandler) Grupos(c *gin.Context) {
	grupos, err := h.grupos.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.HTML(http.StatusOK, "grupos.html", gin.H{"Grupos": grupos})
}

func (h *PaginasHandler) InventarioGrupo(c *gin.Context) {
	resp, err := h.consulta.ListarPorGrupo(c.Request.Context(), c.Param("nombre"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.HTML(http.StatusOK, "inventario_grupo.html", gin.H{
		"Grupo":           resp.Grupo,
		"Dispositivos":    resp.Dispositivos,
		"ProductosVenta":  resp.ProductosVenta,
		"MaterialGeneral": resp.MaterialGeneral,
	})
}

func (h *PaginasHandler) FormularioAgregar(c *gin.Context) {
	grupos, err := h.grupos.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.HTML(http.StatusOK, "agregar_producto.html", gin.H{"Grupos": grupos})
}

func (h *PaginasHandler) FormularioBuscar(c *gin.Context) {
	c.HTML(http.StatusOK, "buscar_producto.html", nil)
}
