package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vtu24838-svg/FOODLY-WMAD-BATCH-11/internal/core/ports"
	"github.com/vtu24838-svg/FOODLY-WMAD-BATCH-11/internal/domain"
)

// LoginResult — результат входа. Created говорит, был ли пользователь
// создан этим вызовом или найден существующий.
type LoginResult struct {
	Username string
	Created  bool
}

// AccountUseCase определяет бизнес-логику работы с учётными записями
type AccountUseCase interface {
	// LoginOrRegister ищет пользователя по username. Найден — вход успешен,
	// пароль не сверяется (так требует исходная постановка). Не найден —
	// создаётся новая запись с переданным паролем.
	LoginOrRegister(ctx context.Context, username, password string) (*LoginResult, error)
}

// accountUseCase implements AccountUseCase
type accountUseCase struct {
	users          ports.UserStorage
	storageTimeout time.Duration
	logger         *slog.Logger
}

// NewAccountUseCase создает новый экземпляр AccountUseCase
func NewAccountUseCase(users ports.UserStorage, storageTimeout time.Duration, logger *slog.Logger) AccountUseCase {
	return &accountUseCase{
		users:          users,
		storageTimeout: storageTimeout,
		logger:         logger,
	}
}

func (uc *accountUseCase) LoginOrRegister(ctx context.Context, username, password string) (*LoginResult, error) {
	// Валидация до любого обращения к хранилищу
	if username == "" || password == "" {
		return nil, fmt.Errorf("username и password обязательны: %w", domain.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.storageTimeout)
	defer cancel()

	user, err := uc.users.GetUserByUsername(ctx, username)
	if err != nil {
		uc.logger.Error("failed to look up user", "username", username, "error", err)
		return nil, classifyStorageErr("lookup user", err)
	}

	if user != nil {
		uc.logger.Info("user logged in", "username", username, "user_id", user.ID)
		return &LoginResult{Username: user.Username, Created: false}, nil
	}

	newUser := domain.User{
		Username:  username,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}

	err = uc.users.CreateUser(ctx, &newUser)
	if errors.Is(err, domain.ErrDuplicateUsername) {
		// Проиграли гонку регистрации: кто-то вставил этот username между
		// нашим SELECT и INSERT. Для клиента это обычный вход.
		uc.logger.Warn("registration race lost, treating as login", "username", username)
		return &LoginResult{Username: username, Created: false}, nil
	}
	if err != nil {
		uc.logger.Error("failed to create user", "username", username, "error", err)
		return nil, classifyStorageErr("create user", err)
	}

	uc.logger.Info("user registered", "username", username, "user_id", newUser.ID)
	return &LoginResult{Username: newUser.Username, Created: true}, nil
}

// classifyStorageErr сводит ошибку хранилища к одному из видов domain.Err*,
// сохраняя исходный текст для серверного лога
func classifyStorageErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %v: %w", op, err, domain.ErrTimeout)
	}
	return fmt.Errorf("%s: %v: %w", op, err, domain.ErrStorage)
}
