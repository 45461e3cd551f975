package router

import (
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/44Loqueinor12345/Inventario/internal/config"
	"github.com/44Loqueinor12345/Inventario/internal/handler"
	"github.com/44Loqueinor12345/Inventario/internal/infra"
	"github.com/44Loqueinor12345/Inventario/internal/middleware"
	"github.com/44Loqueinor12345/Inventario/internal/repository"
	"github.com/44Loqueinor12345/Inventario/internal/service"
	"github.com/44Loqueinor12345/Inventario/web"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP
	r.Use(middleware.BodyLimit(cfg.MaxUploadBytes()))

	// ── Infrastructure ───────────────────────────────────────────────────────
	renderer := infra.NewBarcodeRenderer(cfg.BarcodeDir)
	fotos := infra.NewFotoStore(cfg.UploadDir)

	// ── Repositories ─────────────────────────────────────────────────────────
	grupoRepo := repository.NewGrupoRepository(db)
	codigoRepo := repository.NewCodigoBarrasRepository(db)
	dispositivoRepo := repository.NewDispositivoRepository(db)
	productoVentaRepo := repository.NewProductoVentaRepository(db)
	materialRepo := repository.NewMaterialGeneralRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	codigoSvc := service.NewCodigoService(codigoRepo, renderer)
	dispositivoSvc := service.NewDispositivoService(dispositivoRepo, grupoRepo, codigoSvc, codigoRepo, renderer, fotos)
	productoVentaSvc := service.NewProductoVentaService(productoVentaRepo, grupoRepo, codigoSvc, codigoRepo, renderer)
	materialSvc := service.NewMaterialGeneralService(materialRepo, grupoRepo, codigoSvc, codigoRepo, renderer)
	consultaSvc := service.NewConsultaService(grupoRepo, dispositivoRepo, productoVentaRepo, materialRepo)
	exportSvc := service.NewExportService(grupoRepo, dispositivoRepo, productoVentaRepo, materialRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	paginasH := handler.NewPaginasHandler(grupoRepo, consultaSvc)
	productosH := handler.NewProductosHandler(dispositivoSvc, productoVentaSvc, materialSvc)
	consultaH := handler.NewConsultaHandler(consultaSvc)
	exportH := handler.NewExportHandler(exportSvc)
	codigosH := handler.NewCodigosHandler(codigoSvc)
	healthH := handler.NewHealthHandler(db)

	// ── Templates and static assets ──────────────────────────────────────────
	tmpl := template.Must(template.ParseFS(web.TemplatesFS, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	cssFS, err := fs.Sub(web.StaticFS, "static/css")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static/css", http.FS(cssFS))
	r.Static("/static/uploads", cfg.UploadDir)
	r.Static("/static/barcodes", cfg.BarcodeDir)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", healthH.Check)

	r.GET("/", paginasH.Index)
	r.GET("/grupos", paginasH.Grupos)
	r.GET("/grupos/:nombre", paginasH.InventarioGrupo)

	productos := r.Group("/productos")
	{
		productos.GET("/agregar", paginasH.FormularioAgregar)
		productos.POST("/agregar", productosH.Agregar)
		productos.GET("/buscar", paginasH.FormularioBuscar)
		productos.POST("/buscar", consultaH.Buscar)
		productos.POST("/:tipo/:id/editar", productosH.Editar)
		productos.POST("/:tipo/:id/eliminar", productosH.Eliminar)
	}

	r.GET("/exportar", exportH.Exportar)
	r.POST("/codigos/generar", codigosH.Generar)

	return r
}
