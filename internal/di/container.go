package di

import (
	"log"

	"github.com/vtu24838-svg/FOODLY-WMAD-BATCH-11/internal/app"
	"github.com/vtu24838-svg/FOODLY-WMAD-BATCH-11/internal/config"
	"github.com/vtu24838-svg/FOODLY-WMAD-BATCH-11/internal/database/client"
	"github.com/vtu24838-svg/FOODLY-WMAD-BATCH-11/internal/database/storage"
	"github.com/vtu24838-svg/FOODLY-WMAD-BATCH-11/internal/logger"
	"github.com/vtu24838-svg/FOODLY-WMAD-BATCH-11/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Открытие базы данных и применение миграций.
	// Без рабочего хранилища процесс не поднимаем: сервис, который может
	// отвечать только пятисотками, хуже перезапуска.
	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 3. Инициализация хранилищ
	userStorage := storage.NewUserStorage(dbClient.DB, slogger)
	orderStorage := storage.NewOrderStorage(dbClient.DB, slogger)

	// 4. Инициализация бизнес-логики (usecases)
	accountUseCase := usecase.NewAccountUseCase(userStorage, cfg.StorageTimeout, slogger)
	orderUseCase := usecase.NewOrderUseCase(orderStorage, userStorage, cfg.StorageTimeout, slogger)

	// 5. Сборка итогового приложения
	application := app.NewApp(cfg, slogger, dbClient, accountUseCase, orderUseCase)

	log.Println("[container] Все зависимости успешно инициализированы.")
	return application, nil
}
