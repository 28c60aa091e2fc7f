package get_availability

import (
	"errors"
	"net/http"

	"github.com/shidenryu/booking-service/internal/api/handlers"
	getMonthAvailability "github.com/shidenryu/booking-service/internal/usecase/get_month_availability"
)

const (
	msgMissingMonth = "month query parameter is required"
	msgInvalidMonth = "month must be formatted as YYYY-MM"
)

type Handler struct {
	useCase GetMonthAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: month (required, YYYY-MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		h.logger.Warn("GET /availability - Missing month")
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getMonthAvailability.Request{Month: month})
	if err != nil {
		if errors.Is(err, getMonthAvailability.ErrInvalidMonth) {
			h.logger.Warn("GET /availability - Invalid month: %s", month)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		h.logger.Error("GET /availability - Failed to get availability: month=%s, error=%v", month, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability - Availability retrieved: month=%s, days=%d, degraded=%v",
		month, len(result.Days), result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
