package ports

import (
	"context"

	"github.com/vtu24838-svg/FOODLY-WMAD-BATCH-11/internal/domain"
)

// UserStorage определяет методы для взаимодействия с хранилищем пользователей
type UserStorage interface {
	// GetUserByUsername возвращает пользователя по точному совпадению username.
	// Если пользователя нет — (nil, nil), это не ошибка.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// CreateUser вставляет нового пользователя и заполняет user.ID.
	// При занятом username возвращает domain.ErrDuplicateUsername.
	CreateUser(ctx context.Context, user *domain.User) error

	ListUsers(ctx context.Context) ([]domain.User, error)
	CountUsers(ctx context.Context) (int64, error)
}

// OrderStorage определяет методы для взаимодействия с хранилищем заказов
// и истории корзины
type OrderStorage interface {
	// CreateOrderWithHistory вставляет заказ и все строки истории корзины
	// одной транзакцией; при любой ошибке откатывается целиком.
	// Заполняет order.ID.
	CreateOrderWithHistory(ctx context.Context, order *domain.Order, entries []domain.CartHistoryEntry) error

	// ListOrdersByUsername возвращает заказы пользователя, новые первыми.
	ListOrdersByUsername(ctx context.Context, username string) ([]domain.Order, error)

	// ListCartHistoryByUsername возвращает историю корзины пользователя,
	// новые записи первыми.
	ListCartHistoryByUsername(ctx context.Context, username string) ([]domain.CartHistoryEntry, error)

	// Полные выгрузки и счётчики — для страниц оператора.
	ListAllOrders(ctx context.Context) ([]domain.Order, error)
	ListAllCartHistory(ctx context.Context) ([]domain.CartHistoryEntry, error)
	CountOrders(ctx context.Context) (int64, error)
	CountCartHistory(ctx context.Context) (int64, error)
}
