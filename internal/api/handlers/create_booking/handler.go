package create_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/shidenryu/booking-service/internal/api/handlers"
	submitBooking "github.com/shidenryu/booking-service/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSlotTaken          = "the selected time slot is no longer available"
	msgRelayUnavailable   = "booking system is temporarily unavailable, please try again"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrValidation):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondError(w, http.StatusBadRequest, submitBooking.CodeValidationError, validationMessage(err))

		case errors.Is(err, submitBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: date=%s, slot=%s", req.Date, req.TimeSlot)
			handlers.RespondConflict(w, submitBooking.CodeSlotTaken, msgSlotTaken)

		case errors.Is(err, submitBooking.ErrRelayUnreachable), errors.Is(err, submitBooking.ErrRelayParse):
			h.logger.Error("POST /bookings - Relay unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, submitBooking.ErrorCode(err), msgRelayUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to submit booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking submitted: booking_id=%s, date=%s, slot=%s",
		result.BookingID, req.Date, req.TimeSlot)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// validationMessage вынимает человекочитаемую часть из обёрнутой ошибки
// валидации
func validationMessage(err error) string {
	msg := err.Error()
	if _, detail, ok := strings.Cut(msg, ": "); ok {
		return detail
	}
	return msg
}
