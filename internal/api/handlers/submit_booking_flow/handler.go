package submit_booking_flow

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shidenryu/booking-service/internal/api/handlers"
	"github.com/shidenryu/booking-service/internal/domain"
	"github.com/shidenryu/booking-service/internal/service/wizard"
)

const (
	msgTermsNotAgreed  = "terms must be agreed before submission"
	msgAlreadyInFlight = "submission is already in progress"
)

type Handler struct {
	wizard WizardService
	logger Logger
}

func NewHandler(wizardSvc WizardService, logger Logger) *Handler {
	return &Handler{
		wizard: wizardSvc,
		logger: logger,
	}
}

// SubmitResponse HTTP response model исхода отправки
// При accepted заполнено summary, при conflict/failed — draft и message
type SubmitResponse struct {
	Status  string          `json:"status"`
	Summary *domain.Summary `json:"summary,omitempty"`
	Draft   *domain.Draft   `json:"draft,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Handle POST /api/v1/booking-flow/{sessionKey}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionKey := mux.Vars(r)["sessionKey"]

	outcome, err := h.wizard.Submit(r.Context(), sessionKey)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrTermsNotAgreed):
			h.logger.Warn("POST /booking-flow/{key}/submit - Terms not agreed: session=%s", sessionKey)
			handlers.RespondBadRequest(w, msgTermsNotAgreed)
		case errors.Is(err, wizard.ErrSubmissionInFlight):
			h.logger.Warn("POST /booking-flow/{key}/submit - Submission already in flight: session=%s", sessionKey)
			handlers.RespondConflict(w, "submission_in_flight", msgAlreadyInFlight)
		default:
			h.logger.Error("POST /booking-flow/{key}/submit - Failed to submit: session=%s, error=%v", sessionKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := SubmitResponse{
		Status:  string(outcome.Status),
		Summary: outcome.Summary,
		Draft:   outcome.Draft,
		Message: outcome.Message,
	}

	switch outcome.Status {
	case wizard.OutcomeAccepted:
		h.logger.Info("POST /booking-flow/{key}/submit - Booking accepted: session=%s, booking_id=%s",
			sessionKey, outcome.Summary.BookingID)
		handlers.RespondJSON(w, http.StatusCreated, response)
	case wizard.OutcomeConflict:
		h.logger.Warn("POST /booking-flow/{key}/submit - Slot conflict: session=%s", sessionKey)
		handlers.RespondJSON(w, http.StatusConflict, response)
	default:
		// Сбой отправки — не ошибка HTTP-уровня: состояние мастера валидно,
		// гость может повторить
		h.logger.Warn("POST /booking-flow/{key}/submit - Submission failed: session=%s, message=%s",
			sessionKey, outcome.Message)
		handlers.RespondJSON(w, http.StatusOK, response)
	}
}
