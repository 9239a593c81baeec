package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vtu24838-svg/FOODLY-WMAD-BATCH-11/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func setupAccount(t *testing.T) (AccountUseCase, *mockUserStorage) {
	t.Helper()
	users := newMockUserStorage()
	uc := NewAccountUseCase(users, 5*time.Second, newTestLogger())
	return uc, users
}

func TestLoginOrRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("first call creates the user", func(t *testing.T) {
		uc, users := setupAccount(t)

		result, err := uc.LoginOrRegister(ctx, "alice", "x")

		require.NoError(t, err)
		assert.Equal(t, "alice", result.Username)
		assert.True(t, result.Created)

		require.Len(t, users.store, 1)
		saved := users.store["alice"]
		assert.Equal(t, "x", saved.Password)
		assert.False(t, saved.CreatedAt.IsZero())
	})

	t.Run("second call is a plain login, any password", func(t *testing.T) {
		uc, users := setupAccount(t)

		_, err := uc.LoginOrRegister(ctx, "alice", "x")
		require.NoError(t, err)

		result, err := uc.LoginOrRegister(ctx, "alice", "совсем другой пароль")

		require.NoError(t, err)
		assert.False(t, result.Created)
		assert.Equal(t, "alice", result.Username)
		// второй пользователь не появился, пароль не перезаписан
		require.Len(t, users.store, 1)
		assert.Equal(t, "x", users.store["alice"].Password)
	})

	t.Run("empty username or password fails validation", func(t *testing.T) {
		uc, users := setupAccount(t)

		cases := []struct{ username, password string }{
			{"", "x"},
			{"alice", ""},
			{"", ""},
		}
		for _, c := range cases {
			_, err := uc.LoginOrRegister(ctx, c.username, c.password)
			assert.ErrorIs(t, err, domain.ErrValidation)
		}
		assert.Empty(t, users.store)
	})

	t.Run("lost registration race is treated as login", func(t *testing.T) {
		uc, users := setupAccount(t)
		users.createErr = fmt.Errorf("insert user: %w", domain.ErrDuplicateUsername)

		result, err := uc.LoginOrRegister(ctx, "bob", "pw")

		require.NoError(t, err)
		assert.False(t, result.Created)
		assert.Equal(t, "bob", result.Username)
	})

	t.Run("lookup failure maps to storage error", func(t *testing.T) {
		uc, users := setupAccount(t)
		users.getErr = errors.New("disk I/O error")

		_, err := uc.LoginOrRegister(ctx, "alice", "x")

		assert.ErrorIs(t, err, domain.ErrStorage)
		assert.NotErrorIs(t, err, domain.ErrTimeout)
	})

	t.Run("deadline maps to timeout error", func(t *testing.T) {
		uc, users := setupAccount(t)
		users.getErr = context.DeadlineExceeded

		_, err := uc.LoginOrRegister(ctx, "alice", "x")

		assert.ErrorIs(t, err, domain.ErrTimeout)
	})

	t.Run("insert failure maps to storage error", func(t *testing.T) {
		uc, users := setupAccount(t)
		users.createErr = errors.New("database is locked")

		_, err := uc.LoginOrRegister(ctx, "alice", "x")

		assert.ErrorIs(t, err, domain.ErrStorage)
	})
}
