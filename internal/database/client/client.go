package client

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-migrate/migrate/v4"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/vtu24838-svg/FOODLY-WMAD-BATCH-11/internal/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func init() {
	// драйвер modernc регистрируется под именем "sqlite",
	// которое sqlx не знает — учим его плейсхолдеру "?"
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Client представляет клиент для взаимодействия с SQLite.
// Единственный общий хэндл на всё приложение.
type Client struct {
	DB     *sqlx.DB
	logger *slog.Logger
}

// NewClient открывает файл базы данных и применяет миграции
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	start := time.Now()

	db, err := sqlx.Connect("sqlite", cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to open SQLite database", "path", cfg.DatabasePath, "error", err)
		return nil, fmt.Errorf("ошибка открытия базы данных %s: %w", cfg.DatabasePath, err)
	}

	// SQLite — single-writer; одно соединение избавляет от SQLITE_BUSY
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if err = db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		return nil, fmt.Errorf("не удалось подключиться к базе данных: %w", err)
	}

	if err := ApplyMigrations(db, logger); err != nil {
		return nil, fmt.Errorf("ошибка при применении миграций: %w", err)
	}

	logger.Info("SQLite database opened successfully",
		"path", cfg.DatabasePath,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &Client{DB: db, logger: logger}, nil
}

// ApplyMigrations применяет все встроенные миграции к открытой базе.
// Повторный вызов безопасен: схема создаётся через IF NOT EXISTS,
// уже применённые версии мигратор пропускает.
func ApplyMigrations(db *sqlx.DB, logger *slog.Logger) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("не удалось прочитать встроенные миграции: %w", err)
	}

	driver, err := sqlitemigrate.WithInstance(db.DB, &sqlitemigrate.Config{})
	if err != nil {
		return fmt.Errorf("не удалось создать драйвер мигратора: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("не удалось создать экземпляр мигратора: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("ошибка выполнения миграций: %w", err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("database schema is up to date")
	} else {
		logger.Info("database migrations applied")
	}
	return nil
}

func (c *Client) Close() error {
	start := time.Now()
	if err := c.DB.Close(); err != nil {
		c.logger.Error("failed to close database connection", "error", err)
		return err
	}
	c.logger.Info("database connection closed", "duration_ms", time.Since(start).Milliseconds())
	return nil
}
