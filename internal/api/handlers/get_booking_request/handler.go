package get_booking_request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/shidenryu/booking-service/internal/api/handlers"
	"github.com/shidenryu/booking-service/internal/service/bookingrequests"
)

const (
	msgInvalidRequestID = "invalid booking request ID"
	msgRequestNotFound  = "booking request not found"
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

// Handle GET /api/v1/admin/booking-requests/{requestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["requestId"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /admin/booking-requests/{id} - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, bookingrequests.ErrRequestNotFound) {
			h.logger.Warn("GET /admin/booking-requests/{id} - Request not found: id=%d", id)
			handlers.RespondNotFound(w, msgRequestNotFound)
			return
		}
		h.logger.Error("GET /admin/booking-requests/{id} - Failed to get request: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/booking-requests/{id} - Request retrieved: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
