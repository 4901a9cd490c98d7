package router

import (
	"time"

	"github.com/AndresGigant/pedidos-comerciales/internal/catalog"
	"github.com/AndresGigant/pedidos-comerciales/internal/config"
	"github.com/AndresGigant/pedidos-comerciales/internal/handler"
	"github.com/AndresGigant/pedidos-comerciales/internal/ledger"
	"github.com/AndresGigant/pedidos-comerciales/internal/middleware"
	"github.com/AndresGigant/pedidos-comerciales/internal/repository"
	"github.com/AndresGigant/pedidos-comerciales/internal/service"
	"github.com/AndresGigant/pedidos-comerciales/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Catalog/Ledger/Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, catalogo catalog.Store, historial ledger.Ledger, dispatcher *worker.Dispatcher) *gin.Engine {
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

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	pedidoSvc := service.NewPedidoService(catalogo, historial, dispatcher, rdb, cfg)
	dashboardSvc := service.NewDashboardService(historial, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	historialH := handler.NewHistorialHandler(historial)
	stockH := handler.NewStockHandler(catalogo)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	catalogoH := handler.NewCatalogoHandler(catalogo)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, catalogo))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Order entry and history — any authenticated role
		v1.POST("/pedidos", middleware.RequireRole("comercial", "admin"), pedidosH.GenerarPedido)
		v1.GET("/historial", middleware.RequireRole("comercial", "admin"), historialH.Listar)

		// Option lists for the order form
		cat := v1.Group("/catalogo", middleware.RequireRole("comercial", "admin"))
		{
			cat.GET("/clientes", catalogoH.Clientes)
			cat.GET("/comerciales", catalogoH.Comerciales)
			cat.GET("/articulos", catalogoH.Articulos)
			cat.GET("/colores", catalogoH.Colores)
		}

		// Admin-only views
		v1.GET("/stock", middleware.RequireRole("admin"), stockH.Consultar)
		v1.GET("/dashboard", middleware.RequireRole("admin"), dashboardH.Resumen)

		usuarios := v1.Group("/usuarios", middleware.RequireRole("admin"))
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
