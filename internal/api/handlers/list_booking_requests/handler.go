package list_booking_requests

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/shidenryu/booking-service/internal/api/handlers"
	"github.com/shidenryu/booking-service/internal/service/bookingrequests"
	"github.com/shidenryu/booking-service/internal/service/bookingrequests/models"
)

const (
	msgInvalidFilter = "invalid filter parameters"
	msgInvalidLimit  = "limit must be a non-negative integer"
)

type Handler struct {
	service BookingRequestsService
	logger  Logger
}

func NewHandler(service BookingRequestsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/booking-requests
// Query params: startDate, endDate (YYYY-MM-DD), relayStatus, limit — все опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListRequestsRequest{}
	if v := query.Get("startDate"); v != "" {
		req.StartDate = &v
	}
	if v := query.Get("endDate"); v != "" {
		req.EndDate = &v
	}
	if v := query.Get("relayStatus"); v != "" {
		req.RelayStatus = &v
	}
	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			h.logger.Warn("GET /admin/booking-requests - Invalid limit: %s", v)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		req.Limit = limit
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookingrequests.ErrInvalidInput) {
			h.logger.Warn("GET /admin/booking-requests - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /admin/booking-requests - Failed to list requests: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/booking-requests - Requests listed: count=%d", len(result.Requests))
	handlers.RespondJSON(w, http.StatusOK, result)
}
