package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"channel-relay/internal/api/routes"
	"channel-relay/internal/auth"
	"channel-relay/internal/bot"
	"channel-relay/internal/config"
	"channel-relay/internal/database"
	"channel-relay/internal/dispatch"
	"channel-relay/internal/logger"
	"channel-relay/internal/metrics"
	"channel-relay/internal/platform/telegram"
	"channel-relay/internal/repository"
	"channel-relay/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	_ "channel-relay/docs" // This is needed for swag
)

//	@title			Channel Relay API
//	@version		1.0
//	@description	Administrative API of the channel relay bot: tenants, activation tokens, source and destination chats.

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 15 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Setup(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logrus.WithError(err).Warn("Failed to close database")
		}
	}()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	m := metrics.NewMetrics(prometheus.DefaultRegisterer)

	client, err := telegram.New(telegram.Options{
		Token:       cfg.TelegramBotToken,
		APIEndpoint: cfg.TelegramAPIEndpoint,
		RatePerSec:  cfg.PlatformRatePerSec,
		Burst:       cfg.PlatformBurst,
		Timeout:     cfg.PlatformTimeout(),
		PollTimeout: cfg.PollTimeout(),
		Debug:       cfg.LogLevel == "debug",
		Metrics:     m,
	})
	if err != nil {
		logrus.Fatal("Failed to connect to Telegram:", err)
	}

	validate := validator.New()

	// Initialize repositories
	tenantRepo := repository.NewTenantRepository(db)
	tokenRepo := repository.NewActivationTokenRepository(db)
	sourceRepo := repository.NewSourceBindingRepository(db)
	destinationRepo := repository.NewDestinationBindingRepository(db)

	// Initialize services
	tenantService := service.NewTenantService(tenantRepo, validate)
	activationService := service.NewActivationService(tokenRepo, tenantRepo)
	routingService := service.NewRoutingService(sourceRepo, destinationRepo, validate)
	adminService := service.NewAdminService(tenantService, activationService, routingService, client, cfg.OwnerUserID)

	authService, err := auth.NewAuthService(cfg.JWTSecret, cfg.APITokenTTL())
	if err != nil {
		logrus.Fatal("Failed to initialize auth service:", err)
	}

	engine := dispatch.NewEngine(routingService, client, cfg.DispatchWorkers, m)
	commands := bot.NewCommands(adminService, client, authService, m)
	runner := bot.NewRunner(client, engine, commands, cfg.MaxConcurrentEvents, m)

	router := routes.SetupRoutes(routes.Dependencies{
		DB:      db,
		Admin:   adminService,
		Auth:    authService,
		Metrics: m,
		// one missed long poll plus its call timeout is tolerated
		Platform:   client,
		MaxPollAge: 2 * (cfg.PollTimeout() + cfg.PlatformTimeout()),
	})
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return runner.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).Error("Server stopped with error")
		return
	}
	logrus.Info("Server stopped")
}
