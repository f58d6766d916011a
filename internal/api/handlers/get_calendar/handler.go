package get_calendar

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/HSM-BookingGateway/internal/api/handlers"
	"github.com/m04kA/HSM-BookingGateway/internal/domain"
)

const (
	msgInvalidYear  = "invalid year"
	msgInvalidMonth = "invalid month"
)

type Handler struct {
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Handle GET /api/v1/calendar?year=2025&month=10
// Без параметров возвращает текущий месяц. Переполнение месяца (0, 13)
// нормализуется с переносом года - так навигация с клиента сводится
// к простому инкременту
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	now := h.timeProvider.Now()

	year := now.Year()
	month := now.Month()

	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /calendar - Invalid year: %v", err)
			handlers.RespondBadRequest(w, msgInvalidYear)
			return
		}
		year = parsed
	}

	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /calendar - Invalid month: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		month = time.Month(parsed)
	}

	grid := domain.NewMonthGrid(year, month)
	handlers.RespondJSON(w, http.StatusOK, FromMonthGrid(grid, now))
}
