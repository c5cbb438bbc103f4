package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/presoak_risk_system/internal/config"
	v1 "github.com/shenikar/presoak_risk_system/internal/handler/http/v1"
	"github.com/shenikar/presoak_risk_system/internal/observability"
	"github.com/shenikar/presoak_risk_system/internal/repository"
	"github.com/shenikar/presoak_risk_system/internal/service"
	"github.com/shenikar/presoak_risk_system/internal/stream"
	"github.com/shenikar/presoak_risk_system/internal/upstream"
	"github.com/shenikar/presoak_risk_system/internal/webhook"
	"github.com/shenikar/presoak_risk_system/pkg/logger"
	"github.com/shenikar/presoak_risk_system/pkg/postgres"
	redisclient "github.com/shenikar/presoak_risk_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/presoak_risk_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Pre-Soak Risk System API
// @version 1.0
// @description Wildfire smoke and soil-stress risk (SERI) with pre-soak irrigation recommendations.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	// Клиенты внешних API
	opts := upstream.Options{Logger: log, Metrics: metrics, Clock: clock}
	firms := upstream.NewFIRMSClient(cfg, opts)
	weather := upstream.NewOpenWeatherClient(cfg, opts)
	openET := upstream.NewOpenETClient(cfg, opts)

	sinks := service.Sinks{AlertMinBand: cfg.AlertMinBand}

	// Инициализация Redis клиента (опционально): очередь оповещений и кеш истории
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		// Инициализация издателя вебхуков
		sinks.Alerts = webhook.NewRedisAlertPublisher(redisClient)

		// Инициализация и запуск воркера вебхуков
		alertWorker := webhook.NewAlertWorker(redisClient, log, cfg)
		alertWorker.Start(ctx)
	}

	// Архив запусков в PostgreSQL (опционально)
	if cfg.DatabaseURL != "" {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		// Инициализация репозиториев
		sinks.Archive = repository.NewSimulationRepository(dbpool, redisClient)
	}

	// Поток записей в Kafka (опционально)
	if len(cfg.KafkaBrokers) > 0 {
		writer := stream.NewWriter(cfg, log)
		defer func() {
			if err := writer.Close(); err != nil {
				log.WithError(err).Error("Failed to close Kafka writer")
			}
		}()
		sinks.Stream = writer
		log.Infof("Publishing records to Kafka topic %s", cfg.KafkaTopic)
	}

	// Инициализация сервисов
	builder := service.NewDatasetBuilder(firms, weather, weather, openET, log, clock, cfg.Location())
	simulationService := service.NewSimulationService(builder, firms, sinks, log, metrics, clock)

	// Инициализация хэндлеров
	handler := v1.NewHandler(simulationService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(cors.New(corsConfig(cfg)))
	router.Use(metrics.GinMiddleware())
	router.LoadHTMLGlob(filepath.Join(cfg.TemplatesDir, "*.html"))

	handler.RegisterIndex(router)
	api := router.Group("/api")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем воркер вебхуков
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}

// corsConfig разрешает все источники, если список пуст или в нем есть "*"
func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 0 {
		c.AllowAllOrigins = true
	}
	c.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-API-Key"}
	for _, origin := range cfg.CORSOrigins {
		if origin == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	if !c.AllowAllOrigins {
		c.AllowOrigins = cfg.CORSOrigins
	}
	return c
}
