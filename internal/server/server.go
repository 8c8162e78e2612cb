// Package server boots the application: configuration, logging, data
// stores, and the HTTP listener with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vivekmishra161/AKC-autoparts-1/app/catalog"
	"github.com/vivekmishra161/AKC-autoparts-1/app/routes"
	"github.com/vivekmishra161/AKC-autoparts-1/app/store"
	"github.com/vivekmishra161/AKC-autoparts-1/app/store/mongostore"
	"github.com/vivekmishra161/AKC-autoparts-1/app/store/sqlstore"
	"github.com/vivekmishra161/AKC-autoparts-1/config"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/cache"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/database"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/logger"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/metrics"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/middleware"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/mongodb"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/reqid"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/router"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/session"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/storage"
)

// Start boots every subsystem and serves HTTP until SIGINT or SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if config.MongoLogs() {
		if mh, err := logger.NewMongoHandler(config.MongoURI(), config.MongoDatabase(), "logs"); err != nil {
			logger.Warn("mongo log handler disabled", "error", err)
		} else {
			logger.UseHandler(logger.NewMultiHandler(currentHandler(), mh))
			defer mh.Close()
		}
	}

	if err := database.Connect(); err != nil {
		return fmt.Errorf("server: database: %w", err)
	}
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, sessions fall back to memory", "error", err)
	}
	storage.Connect()

	st, err := buildStores()
	if err != nil {
		return err
	}

	r := router.New()
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		session.Middleware(session.DefaultOptions(), sessionStore()),
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(200, time.Minute),
	)
	routes.Register(r, st, catalog.New())
	r.Static("/storage", http.Dir(config.StorageLocalRoot()))

	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:              addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if config.StoreDriver() == "mongo" {
		_ = mongodb.Disconnect(ctx)
	}
	return nil
}

// buildStores selects the persistence backend. The relational database
// always hosts admin accounts; STORE_DRIVER decides where storefront
// data lives.
func buildStores() (store.Stores, error) {
	admins := sqlstore.NewAdminStore(database.DB)

	switch config.StoreDriver() {
	case "sql":
		return sqlstore.New(database.DB), nil
	case "mongo":
		if err := mongodb.Connect(); err != nil {
			return store.Stores{}, fmt.Errorf("server: mongodb: %w", err)
		}
		return mongostore.New(admins), nil
	default:
		return store.Stores{}, fmt.Errorf("server: unknown store driver %q", config.StoreDriver())
	}
}

func sessionStore() session.Store {
	if cache.RDB != nil {
		return session.RedisStore{}
	}
	return session.NewMemoryStore()
}

func currentHandler() slog.Handler {
	return logger.L.Handler()
}
