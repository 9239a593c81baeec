package handler

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/index.html
var indexPage []byte

// adminTemplates — разобранные шаблоны страниц оператора
type adminTemplates struct {
	summary *template.Template
	details *template.Template
}

func parseAdminTemplates() (*adminTemplates, error) {
	summary, err := template.ParseFS(templatesFS, "templates/admin_summary.html")
	if err != nil {
		return nil, fmt.Errorf("parse admin summary template: %w", err)
	}
	details, err := template.ParseFS(templatesFS, "templates/admin_details.html")
	if err != nil {
		return nil, fmt.Errorf("parse admin details template: %w", err)
	}
	return &adminTemplates{summary: summary, details: details}, nil
}

// Index — статическая стартовая страница.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(indexPage); err != nil {
		h.logger.Error("failed to write index page", "error", err)
	}
}

// AdminSummary — сводка по количеству строк в таблицах.
// Страницы оператора — только чтение и только форматирование,
// вся выборка идёт через обычные query-примитивы.
func (h *Handler) AdminSummary(w http.ResponseWriter, r *http.Request) {
	counts, err := h.orders.ReportCounts(r.Context())
	if err != nil {
		h.logger.Error("failed to build admin summary", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.summary.Execute(w, counts); err != nil {
		h.logger.Error("failed to render admin summary", "error", err)
	}
}

// AdminDetails — полная выгрузка всех трёх таблиц.
func (h *Handler) AdminDetails(w http.ResponseWriter, r *http.Request) {
	dump, err := h.orders.ReportDump(r.Context())
	if err != nil {
		h.logger.Error("failed to build admin details", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.details.Execute(w, dump); err != nil {
		h.logger.Error("failed to render admin details", "error", err)
	}
}
