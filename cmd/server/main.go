package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/lifelog/internal/app"
	"github.com/lifelog/internal/config"
	"github.com/lifelog/internal/log"
	"github.com/lifelog/internal/router"
)

func main() {
	// .env 可选，缺失时直接使用进程环境
	_ = godotenv.Load()

	cfg, err := config.Load()
	bootstrap := log.New(log.DefaultConfig())
	if err != nil {
		bootstrap.Error("failed to load configuration", log.FieldError, err)
		os.Exit(1)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		bootstrap.Error("invalid log level", log.FieldError, err)
		os.Exit(1)
	}
	logConfig := log.DefaultConfig()
	logConfig.Level = level
	logger := log.New(logConfig)
	log.SetDefault(logger)

	gin.SetMode(cfg.GinMode)

	a, err := app.Open(cfg, logger)
	if err != nil {
		logger.Error("failed to open application", log.FieldError, err)
		os.Exit(1)
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error("failed to close database", log.FieldError, err)
		}
	}()

	srv := &http.Server{
		Addr:           cfg.ListenAddr,
		Handler:        router.SetupRouter(cfg.SessionSecret, a.Services, logger),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", log.FieldError, err)
		}
		cancel()
	}()

	logger.Info("starting lifelog server", "addr", cfg.ListenAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", log.FieldError, err, "addr", cfg.ListenAddr)
		_ = a.Close()
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("server stopped gracefully")
}
