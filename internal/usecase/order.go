package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/vtu24838-svg/FOODLY-WMAD-BATCH-11/internal/core/ports"
	"github.com/vtu24838-svg/FOODLY-WMAD-BATCH-11/internal/domain"
)

// PlaceOrderResult — результат оформления заказа
type PlaceOrderResult struct {
	OrderID int64
	Total   float64
}

// OrderUseCase определяет бизнес-логику работы с заказами и историей корзины
type OrderUseCase interface {
	// PlaceOrder сериализует позиции, сохраняет заказ и по строке истории
	// корзины на каждую позицию. Запись атомарна: заказ без полной истории
	// в базе не появляется.
	PlaceOrder(ctx context.Context, username string, items []domain.OrderItem, total float64) (*PlaceOrderResult, error)

	// ListOrders возвращает заказы пользователя, новые первыми.
	// Для неизвестного пользователя — пустой список, не ошибка.
	ListOrders(ctx context.Context, username string) ([]domain.Order, error)

	// ListCartHistory возвращает историю корзины пользователя, новые первыми.
	ListCartHistory(ctx context.Context, username string) ([]domain.CartHistoryEntry, error)

	// ReportCounts возвращает количество строк по каждой из трёх таблиц.
	ReportCounts(ctx context.Context) (*domain.ReportCounts, error)

	// ReportDump возвращает полное содержимое всех трёх таблиц.
	ReportDump(ctx context.Context) (*domain.ReportDump, error)
}

// orderUseCase implements OrderUseCase
type orderUseCase struct {
	orders         ports.OrderStorage
	users          ports.UserStorage
	storageTimeout time.Duration
	logger         *slog.Logger
}

// NewOrderUseCase создает новый экземпляр OrderUseCase
// принимает реализации портов OrderStorage и UserStorage
func NewOrderUseCase(
	orders ports.OrderStorage,
	users ports.UserStorage,
	storageTimeout time.Duration,
	logger *slog.Logger,
) OrderUseCase {
	return &orderUseCase{
		orders:         orders,
		users:          users,
		storageTimeout: storageTimeout,
		logger:         logger,
	}
}

func (uc *orderUseCase) PlaceOrder(ctx context.Context, username string, items []domain.OrderItem, total float64) (*PlaceOrderResult, error) {
	// Валидация до любого обращения к хранилищу
	switch {
	case username == "":
		return nil, fmt.Errorf("username обязателен: %w", domain.ErrValidation)
	case len(items) == 0:
		return nil, fmt.Errorf("items не может быть пустым: %w", domain.ErrValidation)
	case total <= 0:
		return nil, fmt.Errorf("total должен быть положительным: %w", domain.ErrValidation)
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("serialize order items: %v: %w", err, domain.ErrStorage)
	}

	now := time.Now().UTC()
	order := domain.Order{
		Username:  username,
		RawItems:  string(raw),
		Items:     items,
		Total:     total,
		OrderDate: now,
	}

	entries := make([]domain.CartHistoryEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, domain.CartHistoryEntry{
			Username:  username,
			ItemID:    it.ID,
			ItemName:  it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
			AddedDate: now,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, uc.storageTimeout)
	defer cancel()

	if err := uc.orders.CreateOrderWithHistory(ctx, &order, entries); err != nil {
		uc.logger.Error("failed to persist order", "username", username, "error", err)
		return nil, classifyStorageErr("place order", err)
	}

	uc.logger.Info("order placed",
		"order_id", order.ID,
		"username", username,
		"items", len(items),
		"total", total,
	)
	return &PlaceOrderResult{OrderID: order.ID, Total: total}, nil
}

func (uc *orderUseCase) ListOrders(ctx context.Context, username string) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.storageTimeout)
	defer cancel()

	orders, err := uc.orders.ListOrdersByUsername(ctx, username)
	if err != nil {
		uc.logger.Error("failed to list orders", "username", username, "error", err)
		return nil, classifyStorageErr("list orders", err)
	}

	uc.decodeItems(orders)
	return orders, nil
}

func (uc *orderUseCase) ListCartHistory(ctx context.Context, username string) ([]domain.CartHistoryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.storageTimeout)
	defer cancel()

	entries, err := uc.orders.ListCartHistoryByUsername(ctx, username)
	if err != nil {
		uc.logger.Error("failed to list cart history", "username", username, "error", err)
		return nil, classifyStorageErr("list cart history", err)
	}
	return entries, nil
}

func (uc *orderUseCase) ReportCounts(ctx context.Context) (*domain.ReportCounts, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.storageTimeout)
	defer cancel()

	counts := domain.ReportCounts{}
	var err error

	if counts.Users, err = uc.users.CountUsers(ctx); err != nil {
		return nil, classifyStorageErr("count users", err)
	}
	if counts.Orders, err = uc.orders.CountOrders(ctx); err != nil {
		return nil, classifyStorageErr("count orders", err)
	}
	if counts.CartHistory, err = uc.orders.CountCartHistory(ctx); err != nil {
		return nil, classifyStorageErr("count cart history", err)
	}
	return &counts, nil
}

func (uc *orderUseCase) ReportDump(ctx context.Context) (*domain.ReportDump, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.storageTimeout)
	defer cancel()

	dump := domain.ReportDump{}
	var err error

	if dump.Users, err = uc.users.ListUsers(ctx); err != nil {
		return nil, classifyStorageErr("dump users", err)
	}
	if dump.Orders, err = uc.orders.ListAllOrders(ctx); err != nil {
		return nil, classifyStorageErr("dump orders", err)
	}
	if dump.CartHistory, err = uc.orders.ListAllCartHistory(ctx); err != nil {
		return nil, classifyStorageErr("dump cart history", err)
	}

	uc.decodeItems(dump.Orders)

	dump.Counts = domain.ReportCounts{
		Users:       int64(len(dump.Users)),
		Orders:      int64(len(dump.Orders)),
		CartHistory: int64(len(dump.CartHistory)),
	}
	return &dump, nil
}

// decodeItems разбирает сериализованную колонку items для отдачи наружу.
// Нечитаемый blob не валит весь список: заказ отдаётся без позиций.
func (uc *orderUseCase) decodeItems(orders []domain.Order) {
	for i := range orders {
		o := &orders[i]
		if err := json.Unmarshal([]byte(o.RawItems), &o.Items); err != nil {
			uc.logger.Warn("failed to decode order items blob", "order_id", o.ID, "error", err)
			o.Items = nil
		}
	}
}
