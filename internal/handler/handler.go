package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/vtu24838-svg/FOODLY-WMAD-BATCH-11/internal/config"
	"github.com/vtu24838-svg/FOODLY-WMAD-BATCH-11/internal/domain"
	"github.com/vtu24838-svg/FOODLY-WMAD-BATCH-11/internal/usecase"
)

// ErrorCode — машинно-читаемый код в теле ошибки
type ErrorCode string

const (
	CodeValidation ErrorCode = "ERR_VALIDATION"
	CodeStorage    ErrorCode = "ERR_STORAGE"
	CodeTimeout    ErrorCode = "ERR_TIMEOUT"
)

// ErrorResponse — единый формат JSON-ошибки
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// Handler — обработчик HTTP-запросов приложения.
type Handler struct {
	cfg       *config.Config
	accounts  usecase.AccountUseCase
	orders    usecase.OrderUseCase
	validate  *validator.Validate
	templates *adminTemplates
	logger    *slog.Logger
}

// NewHandler создаёт новый экземпляр Handler.
func NewHandler(
	cfg *config.Config,
	accounts usecase.AccountUseCase,
	orders usecase.OrderUseCase,
	logger *slog.Logger,
) (*Handler, error) {
	tmpl, err := parseAdminTemplates()
	if err != nil {
		return nil, err
	}
	return &Handler{
		cfg:       cfg,
		accounts:  accounts,
		orders:    orders,
		validate:  validator.New(),
		templates: tmpl,
		logger:    logger,
	}, nil
}

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError — отправляет JSON-ответ с ошибкой.
func respondWithError(w http.ResponseWriter, code int, errCode ErrorCode, message, details string, logger *slog.Logger) {
	respondWithJSON(w, code, ErrorResponse{Code: errCode, Message: message, Details: details}, logger)
}

// respondUseCaseError разводит ошибку бизнес-логики по HTTP-кодам.
// Детали сбоев хранилища остаются в серверном логе, клиент видит общий текст.
func (h *Handler) respondUseCaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		respondWithError(w, http.StatusBadRequest, CodeValidation, "Missing or invalid required fields", "", h.logger)
	case errors.Is(err, domain.ErrTimeout):
		respondWithError(w, http.StatusGatewayTimeout, CodeTimeout, "Request timed out", "", h.logger)
	default:
		respondWithError(w, http.StatusInternalServerError, CodeStorage, "Internal server error", "", h.logger)
	}
}

// LoginRequest — тело POST /api/login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse — ответ POST /api/login
type LoginResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

// Login — вход по username с регистрацией при первом обращении.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid login request body", "error", err)
		respondWithError(w, http.StatusBadRequest, CodeValidation, "Invalid request body", err.Error(), h.logger)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warn("login request validation failed", "error", err)
		respondWithError(w, http.StatusBadRequest, CodeValidation, "Username and password are required", err.Error(), h.logger)
		return
	}

	result, err := h.accounts.LoginOrRegister(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Error("login failed", "username", req.Username, "error", err)
		h.respondUseCaseError(w, err)
		return
	}

	message := "Login successful"
	if result.Created {
		message = "User created and login successful"
	}
	respondWithJSON(w, http.StatusOK, LoginResponse{Message: message, Username: result.Username}, h.logger)
}

// OrderItemRequest — одна позиция в теле POST /api/order
type OrderItemRequest struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderRequest — тело POST /api/order
type OrderRequest struct {
	Username string             `json:"username" validate:"required"`
	Items    []OrderItemRequest `json:"items" validate:"required,min=1"`
	Total    float64            `json:"total" validate:"required,gt=0"`
}

// OrderResponse — ответ POST /api/order
type OrderResponse struct {
	Message string  `json:"message"`
	OrderID int64   `json:"orderId"`
	Total   float64 `json:"total"`
}

// PlaceOrder — оформление заказа с записью истории корзины.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid order request body", "error", err)
		respondWithError(w, http.StatusBadRequest, CodeValidation, "Invalid request body", err.Error(), h.logger)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warn("order request validation failed", "error", err)
		respondWithError(w, http.StatusBadRequest, CodeValidation, "Username, items and total are required", err.Error(), h.logger)
		return
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.OrderItem{
			ID:       it.ID,
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}

	result, err := h.orders.PlaceOrder(r.Context(), req.Username, items, req.Total)
	if err != nil {
		h.logger.Error("failed to place order", "username", req.Username, "error", err)
		h.respondUseCaseError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, OrderResponse{
		Message: "Order placed successfully",
		OrderID: result.OrderID,
		Total:   result.Total,
	}, h.logger)
}

// ListOrders — заказы пользователя, новые первыми.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	orders, err := h.orders.ListOrders(r.Context(), username)
	if err != nil {
		h.logger.Error("failed to list orders", "username", username, "error", err)
		h.respondUseCaseError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, orders, h.logger)
}

// ListCartHistory — история корзины пользователя, новые записи первыми.
func (h *Handler) ListCartHistory(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	entries, err := h.orders.ListCartHistory(r.Context(), username)
	if err != nil {
		h.logger.Error("failed to list cart history", "username", username, "error", err)
		h.respondUseCaseError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, entries, h.logger)
}

// Health — состояние сервиса для проб и мониторинга.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"status":      "ok",
		"environment": h.cfg.AppEnv,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"database":    h.cfg.DatabasePath,
	}, h.logger)
}
