package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	ServerPort   string `env:"SERVER_PORT" validate:"required"`
	DatabasePath string `env:"DATABASE_PATH" validate:"required"`

	// AppEnv попадает в ответ /health как environment
	AppEnv string `env:"APP_ENV"`

	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	// RequestTimeout — общий дедлайн HTTP-запроса (chi middleware.Timeout),
	// StorageTimeout — дедлайн одной операции с хранилищем.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	StorageTimeout time.Duration `env:"STORAGE_TIMEOUT"`
}

// LoadConfig загружает конфигурацию из переменных окружения.
// В режиме разработки пытается загрузить .env файл.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга конфигурации из окружения: %w", err)
	}

	// Значения по умолчанию выставляем вручную, а не через envDefault,
	// чтобы пустая переменная окружения не затирала дефолт.
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "foodly.db"
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	if cfg.StorageTimeout <= 0 {
		cfg.StorageTimeout = 5 * time.Second
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("некорректная конфигурация: %w", err)
	}

	return &cfg, nil
}
