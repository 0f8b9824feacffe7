package main

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tumpangan/tumpangan/internal/pkg/config"
	"github.com/tumpangan/tumpangan/internal/pkg/database"
	"github.com/tumpangan/tumpangan/internal/pkg/health"
	"github.com/tumpangan/tumpangan/internal/pkg/logger"
	"github.com/tumpangan/tumpangan/internal/pkg/middleware"
	natspkg "github.com/tumpangan/tumpangan/internal/pkg/nats"
	nsqpkg "github.com/tumpangan/tumpangan/internal/pkg/nsq"
	"github.com/tumpangan/tumpangan/internal/pkg/server"
	wspkg "github.com/tumpangan/tumpangan/internal/pkg/websocket"
	authGateway "github.com/tumpangan/tumpangan/services/auth/gateway"
	authHandler "github.com/tumpangan/tumpangan/services/auth/handler"
	authHTTP "github.com/tumpangan/tumpangan/services/auth/handler/http"
	"github.com/tumpangan/tumpangan/services/auth/ratelimit"
	authRepo "github.com/tumpangan/tumpangan/services/auth/repository"
	"github.com/tumpangan/tumpangan/services/auth/store"
	authUC "github.com/tumpangan/tumpangan/services/auth/usecase"
	bookingGateway "github.com/tumpangan/tumpangan/services/bookings/gateway"
	bookingHandler "github.com/tumpangan/tumpangan/services/bookings/handler"
	bookingHTTP "github.com/tumpangan/tumpangan/services/bookings/handler/http"
	bookingRepo "github.com/tumpangan/tumpangan/services/bookings/repository"
	bookingUC "github.com/tumpangan/tumpangan/services/bookings/usecase"
	chatGateway "github.com/tumpangan/tumpangan/services/chat/gateway"
	chatHandler "github.com/tumpangan/tumpangan/services/chat/handler"
	chatHTTP "github.com/tumpangan/tumpangan/services/chat/handler/http"
	chatNATS "github.com/tumpangan/tumpangan/services/chat/handler/nats"
	chatWS "github.com/tumpangan/tumpangan/services/chat/handler/websocket"
	"github.com/tumpangan/tumpangan/services/chat/registry"
	chatRepo "github.com/tumpangan/tumpangan/services/chat/repository"
	chatUC "github.com/tumpangan/tumpangan/services/chat/usecase"
)

const serviceName = "tumpangan"

func main() {
	cfg := config.InitConfig("")

	// Initialize logger
	zapLogger, err := logger.NewZapLogger(cfg.Logger)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting service",
		logger.String("service", serviceName),
		logger.String("environment", cfg.App.Environment))

	// Initialize PostgreSQL
	pgClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NATS
	natsClient, err := natspkg.NewClient(cfg.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Initialize NSQ producer
	nsqProducer, err := nsqpkg.NewProducer(cfg.NSQ.Address)
	if err != nil {
		logger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}

	// OTP store and rate limiter live in process memory
	otpStore := store.NewStore(nil)
	otpStore.StartSweeper(time.Duration(cfg.OTP.SweepSeconds) * time.Second)

	limiter := ratelimit.NewLimiter(
		cfg.OTP.RateLimitMax,
		time.Duration(cfg.OTP.RateWindowMinute)*time.Minute,
		nil)
	limiter.StartCleanup(time.Duration(cfg.OTP.RateWindowMinute) * time.Minute)

	// WebSocket manager and room registry
	wsManager := wspkg.NewManager(cfg.JWT)
	roomRegistry := registry.NewRegistry()

	// Auth service
	authRepository := authRepo.NewAuthRepo(cfg, pgClient.GetDB(), redisClient)
	authGW := authGateway.NewAuthGW(nsqProducer)
	authUsecase := authUC.NewAuthUC(cfg, otpStore, limiter, authRepository, authGW, nil)
	authHTTPHandler := authHTTP.NewAuthHandler(authUsecase)
	authH := authHandler.NewHandler(authHTTPHandler)

	// Chat service
	chatRepository := chatRepo.NewChatRepo(cfg, redisClient)
	pushGW := chatGateway.NewPushGW(cfg.Push)
	chatUsecase := chatUC.NewChatUC(roomRegistry, wsManager, chatRepository, pushGW, nil)
	chatWSHandler := chatWS.NewWebSocketHandler(wsManager, chatUsecase)
	deviceHandler := chatHTTP.NewDeviceHandler(chatUsecase)
	chatNATSHandler := chatNATS.NewNatsHandler(chatUsecase, natsClient)
	chatH := chatHandler.NewHandler(chatWSHandler, deviceHandler, chatNATSHandler, cfg.JWT)

	// Booking service
	bookingRepository := bookingRepo.NewBookingRepo(cfg, pgClient.GetDB())
	bookingGW := bookingGateway.NewBookingGW(natsClient)
	bookingUsecase := bookingUC.NewBookingUC(cfg, bookingRepository, bookingGW, nil)
	bookingHTTPHandler := bookingHTTP.NewBookingHandler(bookingUsecase)
	bookingH := bookingHandler.NewHandler(bookingHTTPHandler, cfg.JWT)

	if err := chatH.InitConsumers(); err != nil {
		logger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware())

	health.RegisterHealthEndpoints(e, serviceName)
	authH.RegisterRoutes(e)
	chatH.RegisterRoutes(e)
	bookingH.RegisterRoutes(e)

	// Shutdown order: stop consumers and producers first, then stores
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		chatH.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		nsqProducer.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		otpStore.Close()
		limiter.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return pgClient.Close()
	})

	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port, shutdownManager)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server error", logger.Err(err))
	}
}
