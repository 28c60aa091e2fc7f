package get_booking_flow

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shidenryu/booking-service/internal/api/handlers"
	"github.com/shidenryu/booking-service/internal/domain"
	"github.com/shidenryu/booking-service/internal/service/wizard"
)

const (
	msgMissingSessionKey = "session key is required"
	msgInvalidDate       = "date must be formatted as YYYY-MM-DD"
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

// FlowResponse HTTP response model состояния мастера
type FlowResponse struct {
	SessionKey string        `json:"sessionKey"`
	Draft      *domain.Draft `json:"draft"`
}

// Handle GET /api/v1/booking-flow/{sessionKey}
// Query params: date (optional, YYYY-MM-DD), preselect (optional, activity id)
// Переопределения из query применяются поверх восстановленного черновика
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionKey := mux.Vars(r)["sessionKey"]
	if sessionKey == "" {
		handlers.RespondBadRequest(w, msgMissingSessionKey)
		return
	}

	ov := wizard.Overrides{
		Date:      r.URL.Query().Get("date"),
		Preselect: r.URL.Query().Get("preselect"),
	}

	draft, err := h.wizard.Restore(r.Context(), sessionKey, ov)
	if err != nil {
		if errors.Is(err, wizard.ErrInvalidDate) {
			h.logger.Warn("GET /booking-flow/{key} - Invalid date override: session=%s, date=%s", sessionKey, ov.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /booking-flow/{key} - Failed to restore draft: session=%s, error=%v", sessionKey, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /booking-flow/{key} - Draft restored: session=%s, step=%d", sessionKey, draft.CurrentStep)
	handlers.RespondJSON(w, http.StatusOK, FlowResponse{
		SessionKey: sessionKey,
		Draft:      draft,
	})
}
