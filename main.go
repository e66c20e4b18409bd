package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pr-poehali-dev/office-supply-webshop/clients"
	"github.com/pr-poehali-dev/office-supply-webshop/config"
	"github.com/pr-poehali-dev/office-supply-webshop/controllers"
	"github.com/pr-poehali-dev/office-supply-webshop/kafka"
	"github.com/pr-poehali-dev/office-supply-webshop/logger"
	"github.com/pr-poehali-dev/office-supply-webshop/middleware"
	"github.com/pr-poehali-dev/office-supply-webshop/repository"
	"github.com/pr-poehali-dev/office-supply-webshop/routes"
	"github.com/pr-poehali-dev/office-supply-webshop/services"
	"github.com/pr-poehali-dev/office-supply-webshop/state"
	"go.uber.org/zap"
)

func main() {
	log, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	cfg := config.Load()
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Wiring ---
	repo := repository.NewMemoryProductRepo()
	catalog := services.NewCatalogService(repo, log)
	if err := catalog.Seed(context.Background()); err != nil {
		log.Fatal("Failed to seed catalog", zap.Error(err))
	}

	var publisher services.OrderPublisher
	var producer *kafka.Producer
	if cfg.KafkaBrokers != "" {
		producer, err = kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaOrderTopic)
		if err != nil {
			log.Fatal("Failed to create Kafka producer", zap.Error(err))
		}
		publisher = producer
	} else {
		log.Info("KAFKA_BROKERS not set, orders are only logged")
	}

	carts := services.NewCartService()
	orders := services.NewOrderService(publisher, carts, log)
	processor := clients.NewProcessorClient(cfg.ProcessorURL, cfg.ProcessorTimeout)
	uploads := services.NewUploadService(processor, catalog, services.NewPriceListBuilder(), cfg.PreserveMappingOverrides, log)

	ctrl := routes.Controllers{
		Catalog: controllers.NewCatalogController(catalog, services.NewTemplateService()),
		Cart:    controllers.NewCartController(catalog, carts, services.NewDealerService(), orders),
		Admin:   controllers.NewAdminController(uploads, cfg.MaxUploadBytes),
		Session: controllers.NewSessionController(),
	}
	store := state.NewStore(cfg.SessionCapacity, cfg.SessionTTL)

	// --- HTTP server ---
	r := gin.New()
	r.MaxMultipartMemory = cfg.MaxUploadBytes
	r.Use(gin.Recovery())
	r.Use(logger.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst, 10*time.Minute)))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID", middleware.SessionHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID", middleware.SessionHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	routes.RegisterRoutes(r, store, ctrl, log)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info("Storefront starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down storefront...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Error("Failed to close Kafka producer", zap.Error(err))
		}
	}
	log.Info("Storefront stopped gracefully")
}
