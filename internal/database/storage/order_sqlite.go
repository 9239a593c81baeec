package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/vtu24838-svg/FOODLY-WMAD-BATCH-11/internal/domain"
)

// OrderStorage реализует интерфейс ports.OrderStorage поверх SQLite через sqlx
type OrderStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewOrderStorage создает новый экземпляр OrderStorage
func NewOrderStorage(db *sqlx.DB, logger *slog.Logger) *OrderStorage {
	return &OrderStorage{db: db, logger: logger}
}

// CreateOrderWithHistory вставляет заказ и k строк истории корзины одной
// транзакцией. Либо записывается всё, либо ничего — частично записанный
// заказ наружу не просачивается.
func (s *OrderStorage) CreateOrderWithHistory(ctx context.Context, order *domain.Order, entries []domain.CartHistoryEntry) error {
	start := time.Now()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin order transaction: %w", err)
	}
	defer tx.Rollback() // no-op после успешного Commit

	res, err := tx.ExecContext(ctx,
		`INSERT INTO orders (username, items, total, order_date) VALUES (?, ?, ?, ?)`,
		order.Username, order.RawItems, order.Total, order.OrderDate)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	orderID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id for order: %w", err)
	}

	for i := range entries {
		e := &entries[i]
		_, err = tx.ExecContext(ctx,
			`INSERT INTO cart_history (username, item_id, item_name, quantity, price, added_date)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			e.Username, e.ItemID, e.ItemName, e.Quantity, e.Price, e.AddedDate)
		if err != nil {
			return fmt.Errorf("insert cart history entry %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit order transaction: %w", err)
	}

	order.ID = orderID

	s.logger.Info("order persisted",
		"order_id", order.ID,
		"username", order.Username,
		"items", len(entries),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// ListOrdersByUsername возвращает заказы пользователя, новые первыми.
// Неизвестный username даёт пустой срез, не ошибку.
func (s *OrderStorage) ListOrdersByUsername(ctx context.Context, username string) ([]domain.Order, error) {
	orders := []domain.Order{}
	err := s.db.SelectContext(ctx, &orders,
		`SELECT id, username, items, total, order_date FROM orders
		 WHERE username = ? ORDER BY order_date DESC, id DESC`, username)
	if err != nil {
		return nil, fmt.Errorf("select orders by username: %w", err)
	}
	return orders, nil
}

// ListCartHistoryByUsername возвращает историю корзины пользователя,
// новые записи первыми.
func (s *OrderStorage) ListCartHistoryByUsername(ctx context.Context, username string) ([]domain.CartHistoryEntry, error) {
	entries := []domain.CartHistoryEntry{}
	err := s.db.SelectContext(ctx, &entries,
		`SELECT id, username, item_id, item_name, quantity, price, added_date FROM cart_history
		 WHERE username = ? ORDER BY added_date DESC, id DESC`, username)
	if err != nil {
		return nil, fmt.Errorf("select cart history by username: %w", err)
	}
	return entries, nil
}

func (s *OrderStorage) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	orders := []domain.Order{}
	err := s.db.SelectContext(ctx, &orders,
		`SELECT id, username, items, total, order_date FROM orders ORDER BY order_date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("select all orders: %w", err)
	}
	return orders, nil
}

func (s *OrderStorage) ListAllCartHistory(ctx context.Context) ([]domain.CartHistoryEntry, error) {
	entries := []domain.CartHistoryEntry{}
	err := s.db.SelectContext(ctx, &entries,
		`SELECT id, username, item_id, item_name, quantity, price, added_date FROM cart_history
		 ORDER BY added_date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("select all cart history: %w", err)
	}
	return entries, nil
}

func (s *OrderStorage) CountOrders(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM orders`); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

func (s *OrderStorage) CountCartHistory(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM cart_history`); err != nil {
		return 0, fmt.Errorf("count cart history: %w", err)
	}
	return n, nil
}
