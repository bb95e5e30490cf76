package echo

import (
	echofw "github.com/labstack/echo/v4"
	"github.com/phrimp/vnvodich-payment-service/internal/domain"
	"github.com/phrimp/vnvodich-payment-service/internal/infrastructure/seed"
	"github.com/phrimp/vnvodich-payment-service/internal/presentation/echo/handlers"
	"github.com/phrimp/vnvodich-payment-service/internal/presentation/echo/middleware"
	"github.com/phrimp/vnvodich-payment-service/utils/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func ConfigureRoutes(
	e *echofw.Echo,
	cfg *config.Config,
	log *zap.Logger,
	orchestrator domain.PaymentOrchestrator,
	store domain.PaymentStore,
	loader *seed.Loader,
) {
	e.Use(middleware.Recovery(log))
	e.Use(middleware.TraceID)
	e.Use(middleware.RequestLogger(log))

	healthHandler := handlers.NewHealthHandler()
	e.GET("/health", healthHandler.Check)
	e.GET("/metrics", echofw.WrapHandler(promhttp.Handler()))

	apiKey := middleware.APIKeyAuth(cfg.APIKey)

	paymentHandler := handlers.NewPaymentHandler(orchestrator)
	payments := e.Group("/api/payment")
	payments.POST("/:provider/create", paymentHandler.Create, apiKey)
	payments.GET("/:provider/success", paymentHandler.Success)
	payments.GET("/:provider/cancel", paymentHandler.Cancel)
	payments.GET("/order/:orderId", paymentHandler.GetByOrder)

	adminHandler := handlers.NewAdminHandler(store, loader, cfg.SeedFile, log)
	payments.GET("/all", adminHandler.ListAll, apiKey)

	admin := payments.Group("/admin", apiKey)
	admin.POST("/import", adminHandler.Import)
	admin.POST("/import/default", adminHandler.ImportDefault)
	admin.POST("/clear", adminHandler.Clear)
	admin.POST("/add", adminHandler.Add)
	admin.POST("/add/batch", adminHandler.AddBatch)
}
