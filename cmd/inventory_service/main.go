package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/ridloal/inventory-manager/internal/platform/config"
	"github.com/ridloal/inventory-manager/internal/platform/database"
	"github.com/ridloal/inventory-manager/internal/platform/logger"
	"github.com/ridloal/inventory-manager/internal/platform/metrics"
	productAPI "github.com/ridloal/inventory-manager/internal/product/api"
	productRepo "github.com/ridloal/inventory-manager/internal/product/repository"
	productService "github.com/ridloal/inventory-manager/internal/product/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load Config
	dbCfg := config.LoadInventoryDBConfig()
	serverCfg := config.LoadServerConfig("8082")
	watcherCfg := config.LoadWatcherConfig()

	logger.Info("Starting Inventory Service...")

	// Setup Database + Repository
	var db *sql.DB
	var repo productRepo.ProductRepository
	var err error
	switch dbCfg.Driver {
	case "sqlite":
		db, err = database.OpenSQLite(dbCfg.DSN)
		if err == nil {
			repo = productRepo.NewSQLiteProductRepository(db)
		}
	default:
		db, err = database.ConnectPostgres(dbCfg.DSN)
		if err == nil {
			repo = productRepo.NewPostgresProductRepository(db)
		}
	}
	if err != nil {
		logger.Error("Failed to open product store for Inventory Service", err)
		return
	}
	defer db.Close()

	// Setup Dependencies
	prodService := productService.NewProductService(repo)
	productHandler := productAPI.NewProductHandler(prodService)

	// Setup Gin Router
	router := gin.Default()
	router.RedirectTrailingSlash = false
	router.Use(metrics.Middleware())

	apiGroup := router.Group("/api")
	productHandler.RegisterRoutes(apiGroup)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Stock watcher (log-only background job)
	if watcherCfg.Enabled {
		watcher := productService.NewStockWatcher(repo, watcherCfg.Schedule)
		if err := watcher.Start(); err != nil {
			logger.Error("Failed to start stock watcher", err)
			return
		}
		defer watcher.Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    serverCfg.Port,
		Handler: router,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Inventory Service running on port " + serverCfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("Shutting down Inventory Service...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Inventory Service stopped with error", err)
	}
}
