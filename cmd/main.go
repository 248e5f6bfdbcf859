package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"task-manager-api/internal/config"
	router "task-manager-api/internal/http"
	"task-manager-api/internal/http/handlers"
	"task-manager-api/internal/logger"
	"task-manager-api/internal/service"
	"task-manager-api/internal/store/memory"
	"time"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.New(logger.Config{}).Fatal("failed to load config", "error", err)
	}

	baseLogger := logger.New(logger.Config{
		Level:        logger.ParseLevel(cfg.LogLevel),
		IsProduction: cfg.Production,
	})
	baseLogger.Info("application starting", "addr", cfg.HTTPAddr, "log_level", cfg.LogLevel)

	store := memory.New()

	service, err := service.New(store)
	if err != nil {
		baseLogger.Fatal("service initiation failed", "error", err)
	}

	handler := handlers.New(service)

	router := router.New(handler)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           logger.RequestLogger(baseLogger)(router),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		baseLogger.Info("listening", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			baseLogger.Fatal("server failed", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	<-stop
	baseLogger.Info("shut down signal received")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		baseLogger.Fatal("shutdown failed", "error", err)
	}

	baseLogger.Info("shut down gracefully", "tasks_dropped", store.Len())
}
