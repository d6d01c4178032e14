package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/Vi-fly/vendor-elite-backend/internal/application"
	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
	"github.com/Vi-fly/vendor-elite-backend/internal/handler"
	"github.com/Vi-fly/vendor-elite-backend/internal/infrastructure/cache"
	"github.com/Vi-fly/vendor-elite-backend/internal/infrastructure/db"
	"github.com/Vi-fly/vendor-elite-backend/internal/infrastructure/mq"
	"github.com/Vi-fly/vendor-elite-backend/internal/infrastructure/persistence/repository"
	"github.com/Vi-fly/vendor-elite-backend/internal/infrastructure/security"
	"github.com/Vi-fly/vendor-elite-backend/internal/logger"
	"github.com/Vi-fly/vendor-elite-backend/internal/middleware"
	"github.com/Vi-fly/vendor-elite-backend/shared/config"
	"github.com/Vi-fly/vendor-elite-backend/shared/registry"
)

const serviceName = "marketplace"

func main() {
	if err := godotenv.Load(); err != nil {
		// Running without a .env file is fine in containers.
		fmt.Fprintf(os.Stderr, ".env not loaded: %v\n", err)
	}

	cfg := config.LoadConfig(serviceName)
	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty && cfg.Environment == "development",
	})

	database, err := db.NewPostgresConn(db.GetURL(&cfg.Postgres))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close()
	if err := database.CreateTables(); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	var contactCache domain.ContactCache
	redisCache, err := cache.NewRedisCache(&cfg.Redis, serviceName+":")
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, running without cache")
	} else {
		contactCache = redisCache
		defer redisCache.Close()
	}

	var events domain.EventPublisher
	producer, err := mq.InitProducer(cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("rocketmq producer init failed, notifications disabled")
	} else if producer != nil {
		events = producer
		defer producer.Shutdown()
	}
	consumer, err := mq.InitConsumer(cfg, contactCache, log)
	if err != nil {
		log.Warn().Err(err).Msg("rocketmq consumer init failed")
	} else if consumer != nil {
		defer consumer.Shutdown()
	}

	profileRepo := repository.NewProfileRepository(database.DB)
	conversationRepo := repository.NewConversationRepository(database.DB)
	messageRepo := repository.NewMessageRepository(database.DB)
	applicationRepo := repository.NewApplicationRepository(database.DB)
	ratingRepo := repository.NewRatingRepository(database.DB)
	paymentRepo := repository.NewPaymentRepository(database.DB)
	complaintRepo := repository.NewComplaintRepository(database.DB)
	settingRepo := repository.NewSettingRepository(database.DB)

	jwtService := security.NewJWTService(cfg.Auth.JwtSecret, cfg.Auth.ExpireAccessH, cfg.Auth.ExpireRefreshH)
	passwordService := security.NewBcryptService()

	authService := application.NewAuthService(profileRepo, jwtService, passwordService, log)
	messageService := application.NewMessageService(conversationRepo, messageRepo, profileRepo, contactCache, events, log)
	applicationService := application.NewApplicationService(applicationRepo, log)
	ratingService := application.NewRatingService(ratingRepo, settingRepo, log)
	paymentService := application.NewPaymentService(paymentRepo, settingRepo, log)
	complaintService := application.NewComplaintService(complaintRepo, log)
	settingsService := application.NewSettingsService(settingRepo, log)

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	handler.RegisterRoutes(
		r,
		jwtService,
		handler.NewAuthHandler(authService),
		handler.NewMessagingHandler(messageService),
		handler.NewMarketplaceHandler(applicationService, ratingService, paymentService, complaintService),
		handler.NewSettingsHandler(settingsService),
	)

	healthServer := startHealthServer(cfg, log)
	defer healthServer.GracefulStop()

	var serviceManager *registry.ServiceManager
	if cfg.Consul.Enabled {
		serviceManager, err = registerWithConsul(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("consul registration failed, continuing unregistered")
		}
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("http server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	if serviceManager != nil {
		if err := serviceManager.Stop(); err != nil {
			log.Warn().Err(err).Msg("consul deregistration failed")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
}

// startHealthServer exposes a gRPC health endpoint on a side port; Consul's
// gRPC check points here.
func startHealthServer(cfg *config.AppConfig, log zerolog.Logger) *grpc.Server {
	grpcServer := grpc.NewServer()
	healthSrv := health.NewServer()
	healthSrv.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthSrv)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.HealthPort))
	if err != nil {
		log.Fatal().Err(err).Int("port", cfg.HealthPort).Msg("health listener failed")
	}
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Error().Err(err).Msg("health server stopped")
		}
	}()
	return grpcServer
}

func registerWithConsul(cfg *config.AppConfig) (*registry.ServiceManager, error) {
	localIP, err := registry.GetLocalIP()
	if err != nil {
		return nil, err
	}
	serviceManager, err := registry.NewServiceManager(
		&registry.ConsulConfig{
			Address:    cfg.Consul.Address,
			Scheme:     cfg.Consul.Scheme,
			Datacenter: cfg.Consul.Datacenter,
		},
		&registry.ServiceConfig{
			ID:      registry.GenerateServiceID(serviceName, cfg.HTTPPort),
			Name:    serviceName,
			Tags:    []string{serviceName, "api", "v1"},
			Address: localIP,
			Port:    cfg.HTTPPort,
			HealthCheck: &registry.HealthCheck{
				GRPC:                           fmt.Sprintf("%s:%d", localIP, cfg.HealthPort),
				Interval:                       10 * time.Second,
				Timeout:                        3 * time.Second,
				DeregisterCriticalServiceAfter: 1 * time.Minute,
			},
		},
	)
	if err != nil {
		return nil, err
	}
	if err := serviceManager.Start(); err != nil {
		return nil, err
	}
	return serviceManager, nil
}
