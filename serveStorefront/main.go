package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ThushanAshraf/saree-simulate-studio/pkg/bootstrap"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/notify"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/storefront"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, logger, err := bootstrap.Environment()
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize environment: %v", err))
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := bootstrap.Catalog(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}

	storage, closeStorage, err := bootstrap.CartStorage(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize cart storage", zap.Error(err))
	}
	defer closeStorage()

	if !cfg.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	service := storefront.NewService(c, storage, cfg.CartStorageKey, notify.NewLogNotifier(logger), logger)
	router := storefront.NewRouter(service, storefront.RouterConfig{AllowedOrigins: cfg.AllowedOrigins}, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("storefront listening", zap.String("addr", srv.Addr), zap.Int("products", c.Len()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
