package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/vtu24838-svg/FOODLY-WMAD-BATCH-11/internal/di"
)

func main() {
	// bootstrap-логгер (используется только на этапе инициализации,
	// пока основной логгер еще не создан)
	bootstrapLogger := slog.New(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)
	bootstrapLogger.Info("starting application")

	ctx := context.Background()

	app, err := di.BuildApp()
	if err != nil {
		bootstrapLogger.Error("failed to build app", "error", err)
		os.Exit(1)
	}

	logger := app.LoggerIns()
	logger.Info("application initialized successfully")

	if err := app.Run(ctx); err != nil {
		logger.Error("application run failed", "error", err)
		os.Exit(1)
	}

	logger.Info("application stopped gracefully")
}
