package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/vtu24838-svg/FOODLY-WMAD-BATCH-11/internal/config"
	"github.com/vtu24838-svg/FOODLY-WMAD-BATCH-11/internal/database/client"
	"github.com/vtu24838-svg/FOODLY-WMAD-BATCH-11/internal/usecase"
)

type App struct {
	Config         *config.Config
	logger         *slog.Logger
	dbClient       *client.Client
	accountUseCase usecase.AccountUseCase
	orderUseCase   usecase.OrderUseCase
}

func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	dbClient *client.Client,
	accountUseCase usecase.AccountUseCase,
	orderUseCase usecase.OrderUseCase,
) *App {
	return &App{
		Config:         cfg,
		logger:         logger,
		dbClient:       dbClient,
		accountUseCase: accountUseCase,
		orderUseCase:   orderUseCase,
	}
}

// LoggerIns возвращает основной логгер приложения
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Run запускает HTTP-сервер и блокируется до сигнала завершения
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := runServer(ctx, a.Config, a.logger, a.accountUseCase, a.orderUseCase)

	// ресурсы закрываем в любом случае
	if closeErr := a.Shutdown(); closeErr != nil {
		log.Printf("[app] ошибка при завершении: %v", closeErr)
	}

	if err != nil {
		return err
	}

	log.Println("[app] Завершено корректно.")
	return nil
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	if a.dbClient != nil {
		if err := a.dbClient.Close(); err != nil {
			return fmt.Errorf("ошибка закрытия БД: %w", err)
		}
	}
	return nil
}
