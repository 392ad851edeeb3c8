package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	labelsapp "github.com/pabloarenaso/Criemos-visor-pedidos/internal/application/labels"
	ordersapp "github.com/pabloarenaso/Criemos-visor-pedidos/internal/application/orders"
	overridesapp "github.com/pabloarenaso/Criemos-visor-pedidos/internal/application/overrides"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/infrastructure/config"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/infrastructure/logger"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/infrastructure/persistence"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/infrastructure/shopify"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/interfaces/http/handler"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/interfaces/http/middleware"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting order viewer backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("shop", cfg.Shopify.ShopDomain),
	)

	// Local store for address overrides; order data itself is never persisted
	db, err := persistence.NewDatabase(&cfg.Store)
	if err != nil {
		log.Fatal("Failed to open local store", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing local store", zap.Error(err))
		}
	}()

	overrideStore := persistence.NewGormOverrideStore(db.DB)

	// External order source
	source := shopify.NewClient(&cfg.Shopify)

	// Application services
	orderService := ordersapp.NewService(source, overrideStore)
	overrideService := overridesapp.NewService(overrideStore, source)
	labelService := labelsapp.NewService(source, overrideStore)

	// HTTP engine and middleware
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Routes
	router.NewRouter(engine).
		Register(handler.NewOrderHandler(orderService)).
		Register(handler.NewOverrideHandler(overrideService)).
		Register(handler.NewLabelHandler(labelService)).
		Register(handler.NewCatalogHandler(source, orderService)).
		Register(handler.NewSystemHandler(db, version)).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
