package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventticketing/config"
	_ "eventticketing/docs"
	"eventticketing/internal/adapters/asset"
	"eventticketing/internal/adapters/auth"
	"eventticketing/internal/adapters/email"
	httpdelivery "eventticketing/internal/delivery/http"
	"eventticketing/internal/delivery/http/controllers"
	"eventticketing/internal/delivery/http/middleware"
	"eventticketing/internal/domain"
	"eventticketing/internal/ledger"
	"eventticketing/internal/repository/postgres"
	"eventticketing/internal/services"
	"eventticketing/migrations"

	_ "github.com/lib/pq"
)

const shutdownTimeout = 10 * time.Second

// @title Event Ticketing API
// @version 1.0
// @description Ticket sales ledger: events, checkers, tickets and escrow balances.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	logger := config.NewLogger()
	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	startupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.PingContext(startupCtx); err != nil {
		cancel()
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}
	if err := migrations.Apply(startupCtx, db); err != nil {
		cancel()
		logger.Error("apply migrations", "err", err)
		os.Exit(1)
	}
	cancel()

	custody := domain.Address(cfg.CustodyAddress)
	settlement := domain.AssetID(cfg.SettlementAsset)
	l := ledger.New(ledger.Config{
		SettlementAsset: settlement,
		Custody:         custody,
		Gateways:        map[domain.AssetID]domain.AssetGateway{settlement: newGateway(cfg, logger, settlement, custody)},
	})

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFrom,
		FromName:    "Event Ticketing",
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
		Logger: logger,
	})
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	activityRepo := postgres.NewActivityRepository(db)
	publisher := services.NewActivityPublisher(activityRepo, emailService, cfg.ReceiptEmail)
	sales := services.NewTicketSalesService(l, publisher, logger, cfg.RequestTimeout)
	activity := services.NewActivityService(activityRepo, cfg.RequestTimeout)

	router := httpdelivery.NewRouter(httpdelivery.Controllers{
		Events:   controllers.NewEventController(logger, sales),
		Tickets:  controllers.NewTicketController(logger, sales),
		Escrow:   controllers.NewEscrowController(logger, sales),
		Activity: controllers.NewActivityController(logger, activity),
	}, auth.NewJWTVerifier(cfg.JWTSecret), logger)

	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSAllowedOrigins, router))
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		logger.Info("api listening", "addr", server.Addr, "env", cfg.Environment,
			"settlement_asset", l.SettlementAsset(), "custody", l.Custody())
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
		}
	case <-stopCtx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server shutdown", "err", err)
	}
	logger.Info("server stopped")
}

// newGateway returns the remote asset gateway when one is configured and an
// in-process custodial token otherwise.
func newGateway(cfg *config.Config, logger *slog.Logger, settlement domain.AssetID, custody domain.Address) domain.AssetGateway {
	if cfg.AssetGatewayURL != "" {
		logger.Info("using remote asset gateway", "url", cfg.AssetGatewayURL)
		client := &http.Client{Timeout: cfg.AssetGatewayTimeout}
		return asset.NewHTTPGateway(client, cfg.AssetGatewayURL, settlement, custody)
	}
	if cfg.Environment == "production" {
		logger.Warn("ASSET_GATEWAY_URL not set, using in-process custodial token")
	}
	tok := asset.NewCustodialToken(custody)
	for addr, amount := range cfg.DevFundedAccounts {
		holder := domain.Address(addr)
		tok.Mint(holder, amount)
		tok.Approve(holder, custody, amount)
		logger.Debug("funded dev account", "address", holder, "amount", amount)
	}
	return tok
}
