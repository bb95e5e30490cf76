package main

import (
	"context"
	"log"

	"github.com/phrimp/vnvodich-payment-service/internal/application/orchestrator"
	"github.com/phrimp/vnvodich-payment-service/internal/currency"
	"github.com/phrimp/vnvodich-payment-service/internal/domain"
	"github.com/phrimp/vnvodich-payment-service/internal/infrastructure/gormdb"
	"github.com/phrimp/vnvodich-payment-service/internal/infrastructure/gormdb/repositories"
	"github.com/phrimp/vnvodich-payment-service/internal/infrastructure/paypal"
	"github.com/phrimp/vnvodich-payment-service/internal/infrastructure/seed"
	"github.com/phrimp/vnvodich-payment-service/internal/infrastructure/webhook"
	"github.com/phrimp/vnvodich-payment-service/internal/logger"
	echoserver "github.com/phrimp/vnvodich-payment-service/internal/presentation/echo"
	"github.com/phrimp/vnvodich-payment-service/utils/config"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.NewLogger("payment-service", cfg.Development)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	db, err := gormdb.NewConnection(cfg)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := gormdb.RunMigrations(db); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}

	store := repositories.NewPaymentRepo(db)

	loader := seed.NewLoader(store, zlog)
	if cfg.SeedFile != "" {
		if err := loader.SeedIfEmpty(context.Background(), cfg.SeedFile); err != nil {
			zlog.Warn("seeding failed", zap.String("file", cfg.SeedFile), zap.Error(err))
		}
	}

	gateway, err := paypal.New(paypal.Config{
		ClientID:     cfg.PayPalClientID,
		ClientSecret: cfg.PayPalClientSecret,
		Mode:         cfg.PayPalMode,
		SuccessURL:   cfg.SuccessURL,
		CancelURL:    cfg.CancelURL,
	}, zlog)
	if err != nil {
		zlog.Fatal("failed to initialize paypal gateway", zap.Error(err))
	}

	rate, err := decimal.NewFromString(cfg.ExchangeRate)
	if err != nil {
		zlog.Fatal("invalid exchange rate", zap.String("rate", cfg.ExchangeRate), zap.Error(err))
	}
	converter := currency.NewFixedRate(rate, cfg.LocalCurrency, cfg.SettlementCurrency)

	publisher := webhook.NewPublisher(cfg.WebhookURL, cfg.APIKey, zlog)

	svc := orchestrator.NewService(
		store,
		map[string]domain.ProviderGateway{gateway.Name(): gateway},
		publisher,
		converter,
		zlog,
	)

	server := echoserver.NewServer(cfg, zlog)
	echoserver.ConfigureRoutes(server.Echo(), cfg, zlog, svc, store, loader)

	errC := server.Start()
	if err := <-errC; err != nil {
		zlog.Fatal("server error", zap.Error(err))
	}
}
