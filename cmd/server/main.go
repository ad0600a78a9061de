package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/WatchBeam/clock"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clubpulse/service-membership/internal/adapter"
	"github.com/clubpulse/service-membership/internal/application"
	"github.com/clubpulse/service-membership/internal/config"
	memberEvents "github.com/clubpulse/service-membership/internal/events"
	"github.com/clubpulse/service-membership/internal/handler"
	"github.com/clubpulse/service-membership/internal/repository"
	"github.com/clubpulse/service-membership/internal/scheduler"
	"github.com/clubpulse/service-membership/pkg/auth"
	"github.com/clubpulse/service-membership/pkg/database"
	"github.com/clubpulse/service-membership/pkg/health"
	"github.com/clubpulse/service-membership/pkg/kafka"
	"github.com/clubpulse/service-membership/pkg/logger"
	"github.com/clubpulse/service-membership/pkg/middleware"
)

const serviceName = "service-membership"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize logger
	zapLogger, err := logger.NewNamed(cfg.AppEnv, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("starting service-membership",
		zap.String("port", cfg.Port),
	)

	// Connect to database
	dbConfig := database.PostgresConfig{
		Host:     cfg.DBConfig.Host,
		Port:     cfg.DBConfig.Port,
		User:     cfg.DBConfig.User,
		Password: cfg.DBConfig.Password,
		DBName:   cfg.DBConfig.DBName,
		SSLMode:  cfg.DBConfig.SSLMode,
	}

	db, err := database.Connect(dbConfig, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(&repository.MemberModel{}); err != nil {
			zapLogger.Fatal("failed to auto-migrate", zap.Error(err))
		}
		zapLogger.Info("database migration completed (dev auto-migrate)")
	} else {
		if err := database.RunMigrations(dbConfig.DatabaseURL(), "migrations", zapLogger); err != nil {
			zapLogger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(
		cfg.JWTConfig.Secret,
		15*time.Minute,
		7*24*time.Hour,
	)

	// Initialize Kafka producer
	kafkaProducer := kafka.NewProducer(cfg.KafkaConfig.Brokers, zapLogger)
	defer kafkaProducer.Close()

	// Initialize collaborators: payment gateway (mock for development) and
	// the Kafka-backed notification sink
	paymentGateway := adapter.NewMockPaymentGateway(zapLogger)
	notifier := adapter.NewKafkaNotifier(kafkaProducer, serviceName, zapLogger)

	// Initialize repository and application services
	memberRepo := repository.NewGormMemberRepository(db)
	lookupService := application.NewMemberLookupService(memberRepo, zapLogger)
	membershipService := application.NewMembershipService(memberRepo, paymentGateway, notifier, clock.C, zapLogger)

	// Initialize Kafka consumer for payment events
	consumerGroupID := cfg.KafkaConfig.GroupPrefix + "membership-service"
	paymentConsumer := memberEvents.NewPaymentEventConsumer(
		cfg.KafkaConfig.Brokers,
		consumerGroupID,
		membershipService,
		zapLogger,
	)
	defer paymentConsumer.Close()

	// Start Kafka consumer in a goroutine
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	go func() {
		zapLogger.Info("starting payment event consumer")
		if err := paymentConsumer.Start(workerCtx); err != nil {
			if workerCtx.Err() == nil {
				zapLogger.Error("payment event consumer failed", zap.Error(err))
			}
		}
	}()

	// Start the expiry sweeper in a goroutine
	sweeper := scheduler.NewExpirySweeper(membershipService, cfg.SweepInterval, zapLogger)
	go sweeper.Run(workerCtx)

	// Initialize HTTP handlers
	memberHandler := handler.NewMemberHandler(lookupService, membershipService)
	adminHandler := handler.NewAdminMemberHandler(membershipService, lookupService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	router.Use(middleware.LoggerMiddleware(zapLogger))
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register health check routes
	healthHandler := health.NewHandler(db, serviceName)
	healthHandler.RegisterRoutes(router)

	// Register member routes
	apiV1 := router.Group("/api/v1")
	memberHandler.RegisterRoutes(apiV1, jwtManager)
	adminHandler.RegisterRoutes(apiV1, jwtManager)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		zapLogger.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down service-membership...")

	// Cancel Kafka consumer and sweeper
	workerCancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("service-membership stopped")
}
