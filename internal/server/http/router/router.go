package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/cafeorders/internal/metrics"
	pkgAuth "github.com/polkiloo/cafeorders/internal/pkg/auth"
	"github.com/polkiloo/cafeorders/internal/server/http/handlers"
	"github.com/polkiloo/cafeorders/internal/server/http/middleware"
)

const maxRequestBody = 1 << 20

// Params lists router dependencies.
type Params struct {
	fx.In

	Facade   handlers.CafeFacade
	Verifier pkgAuth.KeyVerifier
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

// Setup configures gin router with handlers and middleware.
func Setup(p Params) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	// Route on the escaped path so an encoded slash stays inside :orderNumber.
	engine.UseRawPath = true
	engine.UnescapePathValues = true
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(middleware.Metrics(p.Metrics))
	engine.Use(middleware.DecompressRequest(maxRequestBody))
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	orderHandler := handlers.NewOrderHandler(p.Facade)
	trackingHandler := handlers.NewTrackingHandler(p.Facade)
	healthHandler := handlers.NewHealthHandler(p.Facade)

	engine.NoRoute(handlers.NoRoute)
	engine.GET("/healthz", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	api := engine.Group("/api")
	api.GET("/orders/by-number/:orderNumber", trackingHandler.ByNumber)

	admin := api.Group("/orders")
	admin.Use(middleware.AdminKeyRequired(p.Verifier))
	admin.GET("", orderHandler.List)
	admin.GET("/stats", orderHandler.Stats)
	admin.GET("/:id", orderHandler.Get)
	admin.PUT("/:id", orderHandler.Update)
	admin.POST("/:id/delete-request", orderHandler.RequestDelete)
	admin.DELETE("/:id", orderHandler.Delete)

	return engine
}
