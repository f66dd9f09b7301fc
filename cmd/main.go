package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/globalmatt/wavetraffic/internal/config"
	v1 "github.com/globalmatt/wavetraffic/internal/handler/http/v1"
	"github.com/globalmatt/wavetraffic/internal/models"
	"github.com/globalmatt/wavetraffic/internal/repository"
	"github.com/globalmatt/wavetraffic/internal/service"
	"github.com/globalmatt/wavetraffic/internal/stream"
	"github.com/globalmatt/wavetraffic/pkg/logger"
	"github.com/sirupsen/logrus"

	_ "github.com/globalmatt/wavetraffic/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Wave Traffic Map API
// @version 1.0
// @description Session backend for the Wave Traffic incident map: viewport filtering, selection and render directives.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Загрузка набора происшествий
	incidentStore, err := repository.NewIncidentStore(cfg.DatasetPath, log)
	if err != nil {
		log.Fatalf("Failed to load incident dataset: %v", err)
	}
	log.Infof("Incident dataset loaded: %d incidents", incidentStore.Len())

	// Инициализация брокера команд рендеринга
	broker := stream.NewBroker(cfg.StreamBuffer, log)

	// Инициализация менеджера сессий и запуск уборщика простаивающих сессий
	sessionService := service.NewSessionManager(incidentStore, broker, service.SessionOptions{
		TTL:           cfg.SessionTTL,
		SweepInterval: cfg.SessionSweepInterval,
		MinSelectZoom: cfg.MinSelectZoom,
		DefaultZoom:   cfg.DefaultZoom,
		DefaultCenter: models.LatLng{Lat: cfg.DefaultCenterLat, Lng: cfg.DefaultCenterLng},
	}, log)
	sessionService.StartJanitor(ctx)

	// Инициализация сервисов
	incidentService := service.NewIncidentService(incidentStore, sessionService, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(sessionService, incidentService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	if len(cfg.APIKeys) > 0 {
		api.Use(v1.APIKeyAuthMiddleware(cfg, log))
	}
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
