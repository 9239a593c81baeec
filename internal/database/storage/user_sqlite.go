package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/vtu24838-svg/FOODLY-WMAD-BATCH-11/internal/domain"
)

// UserStorage реализует интерфейс ports.UserStorage поверх SQLite через sqlx
type UserStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewUserStorage создает новый экземпляр UserStorage
func NewUserStorage(db *sqlx.DB, logger *slog.Logger) *UserStorage {
	return &UserStorage{db: db, logger: logger}
}

// GetUserByUsername ищет пользователя по точному совпадению username.
// Отсутствие строки — не ошибка, возвращается (nil, nil).
func (s *UserStorage) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := s.db.GetContext(ctx, &user,
		`SELECT id, username, password, created_at FROM users WHERE username = ?`, username)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select user by username: %w", err)
	}
	return &user, nil
}

// CreateUser вставляет нового пользователя и заполняет user.ID.
func (s *UserStorage) CreateUser(ctx context.Context, user *domain.User) error {
	start := time.Now()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, password, created_at) VALUES (?, ?, ?)`,
		user.Username, user.Password, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert user %q: %w", user.Username, domain.ErrDuplicateUsername)
		}
		return fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id for user: %w", err)
	}
	user.ID = id

	s.logger.Info("user created",
		"user_id", user.ID,
		"username", user.Username,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (s *UserStorage) ListUsers(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	err := s.db.SelectContext(ctx, &users,
		`SELECT id, username, password, created_at FROM users ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("select all users: %w", err)
	}
	return users, nil
}

func (s *UserStorage) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// isUniqueViolation распознаёт нарушение UNIQUE по тексту ошибки драйвера.
// У modernc нет экспортированных типов ошибок уровня constraint.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
