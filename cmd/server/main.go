package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kenyaai/jobs-backend/internal/config"
	"github.com/kenyaai/jobs-backend/internal/handler"
	"github.com/kenyaai/jobs-backend/internal/logging"
	"github.com/kenyaai/jobs-backend/internal/repository"
	"github.com/kenyaai/jobs-backend/internal/service"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("invalid configuration", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	contactRepo, closeStore, err := repository.Open(ctx, cfg.StoreOptions())
	cancel()
	if err != nil {
		logging.Fatal("failed to open contact store", "driver", cfg.StoreDriver, "error", err)
	}
	defer closeStore()
	slog.Info("contact store ready", "driver", cfg.StoreDriver)

	contactService := service.NewContactService(contactRepo)

	h := handler.New(contactRepo, cfg.FrontendURL)
	contactHandler := handler.NewContactHandler(contactService)

	server := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: handler.NewRouter(handler.RouterConfig{
			Handler:   h,
			Contact:   contactHandler,
			StaticDir: cfg.StaticDir,
		}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
