package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/isharehowlabs/yahudim.app/config"
	"github.com/isharehowlabs/yahudim.app/config/database"
	"github.com/isharehowlabs/yahudim.app/pkg/logger"
	"github.com/isharehowlabs/yahudim.app/router"
	"github.com/isharehowlabs/yahudim.app/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	backend, closeBackend, err := openStore(cfg.Store)
	if err != nil {
		logger.Sugar.Fatalf("Failed to open %s store: %v", cfg.Store.Driver, err)
	}
	defer closeBackend()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = backend.Initialize(ctx)
	cancel()
	if err != nil {
		logger.Sugar.Fatalf("Failed to initialize store: %v", err)
	}

	handler := router.Setup(store.NewManager(backend), router.Options{
		CORSOrigins:    cfg.CORSOrigins,
		MetricsEnabled: cfg.MetricsEnabled,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Sugar.Infof("Children's Church API running on port %s", cfg.Port)
		logger.Sugar.Infof("Environment: %s", cfg.Environment)
		logger.Sugar.Infof("CORS enabled for: %s", strings.Join(cfg.CORSOrigins, ", "))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Sugar.Info("Shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar.Errorf("Graceful shutdown failed: %v", err)
	}
}

// openStore builds the configured backend and a func that releases it.
func openStore(cfg config.StoreConfig) (store.Store, func(), error) {
	switch cfg.Driver {
	case config.DriverFile:
		logger.Sugar.Infof("Using data file %s", cfg.DataFile)
		return store.NewFileStore(cfg.DataFile), func() {}, nil
	case config.DriverPostgres:
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return store.NewPostgresStore(db, cfg.Key), func() { db.Close() }, nil
	case config.DriverRedis:
		rs, err := store.NewRedisStore(cfg.RedisURL, cfg.Key)
		if err != nil {
			return nil, nil, err
		}
		logger.Sugar.Info("Connected to Redis")
		return rs, func() { rs.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
