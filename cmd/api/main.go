package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/loanlink-service/internal/api/http"
	"github.com/spec-kit/loanlink-service/internal/api/http/handlers"
	"github.com/spec-kit/loanlink-service/internal/auth"
	"github.com/spec-kit/loanlink-service/internal/config"
	"github.com/spec-kit/loanlink-service/internal/observability"
	"github.com/spec-kit/loanlink-service/internal/payment"
	"github.com/spec-kit/loanlink-service/internal/persistence"
	"github.com/spec-kit/loanlink-service/internal/repository"
	"github.com/spec-kit/loanlink-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App.Env)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := persistence.NewMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("failed to connect mongodb", zap.Error(err))
	}
	defer db.Close(context.Background())

	if err := persistence.EnsureIndexes(ctx, db, logger); err != nil {
		logger.Fatal("failed to ensure indexes", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db.Collection(persistence.CollectionUsers))
	loanRepo := repository.NewLoanRepository(db.Collection(persistence.CollectionLoans))
	applicationRepo := repository.NewApplicationRepository(db.Collection(persistence.CollectionApplications))

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	authMiddleware := auth.NewMiddleware(tokenManager)

	userService := service.NewUserService(userRepo, tokenManager, cfg.Auth.BcryptCost)
	loanService := service.NewLoanService(loanRepo)
	applicationService := service.NewApplicationService(applicationRepo)
	paymentService := service.NewPaymentService(payment.NewStripeClient(cfg.Checkout))

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, db),
		Users:          handlers.NewUsersHandler(userService),
		Loans:          handlers.NewLoansHandler(loanService),
		Applications:   handlers.NewApplicationsHandler(applicationService),
		Payments:       handlers.NewPaymentsHandler(paymentService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
