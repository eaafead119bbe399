package routes

import (
	"net/http"

	_ "mpbridge/docs"
	"mpbridge/internal/adapter/http/handlers"
	"mpbridge/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// RouterOptions controls what NewRouter mounts besides the Mercado Pago routes.
type RouterOptions struct {
	// Prefix the Mercado Pago routes live under, e.g. "/api/mp". Empty mounts
	// them at the root.
	Prefix  string
	Health  bool
	Swagger bool
}

// NewRouter builds a gin engine with request id, logging and recovery
// middleware and the Mercado Pago routes.
func NewRouter(h *handlers.MercadoPagoHandler, log *zap.Logger, opts RouterOptions) *gin.Engine {
	router := NewEngine(log, opts)

	if opts.Prefix == "" || opts.Prefix == "/" {
		// A root catch-all would collide with /health and /swagger.
		router.NoRoute(h.Dispatch)
		return router
	}
	Mount(router.Group(opts.Prefix), h)
	return router
}

// NewEngine builds the gin engine with middleware and the optional health and
// swagger routes, without any Mercado Pago route. opts.Prefix is ignored.
func NewEngine(log *zap.Logger, opts RouterOptions) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}
	router := gin.New()
	setMiddlewares(router, log)

	if opts.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if opts.Health {
		addHealthRoutes(router)
	}
	return router
}

// Mount attaches the Mercado Pago routes to an existing router group.
//
// Under a prefix a catch-all serves every path. On the root group a catch-all
// would collide with the application's own routes, so only the four actions
// are registered there.
func Mount(rg *gin.RouterGroup, h *handlers.MercadoPagoHandler) {
	if rg.BasePath() != "/" {
		rg.Any("/*action", h.Dispatch)
		return
	}
	for _, action := range []string{
		handlers.ActionCheckout,
		handlers.ActionSubscribe,
		handlers.ActionWebhook,
		handlers.ActionConfig,
	} {
		rg.Any("/"+action, h.Dispatch)
	}
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
}

func addHealthRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
