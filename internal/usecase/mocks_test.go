package usecase

import (
	"context"

	"github.com/vtu24838-svg/FOODLY-WMAD-BATCH-11/internal/domain"
)

type mockUserStorage struct {
	store     map[string]*domain.User
	nextID    int64
	getErr    error
	createErr error
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{store: make(map[string]*domain.User)}
}

func (m *mockUserStorage) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	user, ok := m.store[username]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *domain.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.store[user.Username]; ok {
		return domain.ErrDuplicateUsername
	}
	m.nextID++
	user.ID = m.nextID
	copied := *user
	m.store[user.Username] = &copied
	return nil
}

func (m *mockUserStorage) ListUsers(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	for _, u := range m.store {
		users = append(users, *u)
	}
	return users, nil
}

func (m *mockUserStorage) CountUsers(ctx context.Context) (int64, error) {
	return int64(len(m.store)), nil
}

type mockOrderStorage struct {
	orders    []domain.Order
	history   []domain.CartHistoryEntry
	nextID    int64
	createErr error
	listErr   error
}

func newMockOrderStorage() *mockOrderStorage {
	return &mockOrderStorage{}
}

func (m *mockOrderStorage) CreateOrderWithHistory(ctx context.Context, order *domain.Order, entries []domain.CartHistoryEntry) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	order.ID = m.nextID
	m.orders = append(m.orders, *order)
	m.history = append(m.history, entries...)
	return nil
}

func (m *mockOrderStorage) ListOrdersByUsername(ctx context.Context, username string) ([]domain.Order, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	orders := []domain.Order{}
	for _, o := range m.orders {
		if o.Username == username {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (m *mockOrderStorage) ListCartHistoryByUsername(ctx context.Context, username string) ([]domain.CartHistoryEntry, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	entries := []domain.CartHistoryEntry{}
	for _, e := range m.history {
		if e.Username == username {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (m *mockOrderStorage) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]domain.Order{}, m.orders...), nil
}

func (m *mockOrderStorage) ListAllCartHistory(ctx context.Context) ([]domain.CartHistoryEntry, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]domain.CartHistoryEntry{}, m.history...), nil
}

func (m *mockOrderStorage) CountOrders(ctx context.Context) (int64, error) {
	return int64(len(m.orders)), nil
}

func (m *mockOrderStorage) CountCartHistory(ctx context.Context) (int64, error) {
	return int64(len(m.history)), nil
}
