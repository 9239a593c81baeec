package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vtu24838-svg/FOODLY-WMAD-BATCH-11/internal/config"
	"github.com/vtu24838-svg/FOODLY-WMAD-BATCH-11/internal/handler"
	"github.com/vtu24838-svg/FOODLY-WMAD-BATCH-11/internal/usecase"
)

// runServer запускает HTTP сервер и блокируется до отмены контекста
func runServer(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	accountUseCase usecase.AccountUseCase,
	orderUseCase usecase.OrderUseCase,
) error {
	h, err := handler.NewHandler(cfg, accountUseCase, orderUseCase, logger)
	if err != nil {
		return fmt.Errorf("инициализация обработчиков: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(handler.RequestID())
	r.Use(handler.RequestLogger(logger))
	r.Use(handler.Metrics())
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Get("/", h.Index)
	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/order", h.PlaceOrder)
		r.Get("/orders/{username}", h.ListOrders)
		r.Get("/cart-history/{username}", h.ListCartHistory)
	})

	r.Get("/admin", h.AdminSummary)
	r.Get("/admin/details", h.AdminDetails)

	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "addr", serverAddr, "environment", cfg.AppEnv)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("ошибка при запуске сервера: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received, stopping server")

	// Graceful Shutdown
	ctxServer, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxServer); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}
