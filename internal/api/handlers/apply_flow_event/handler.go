package apply_flow_event

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shidenryu/booking-service/internal/api/handlers"
	"github.com/shidenryu/booking-service/internal/domain"
	"github.com/shidenryu/booking-service/internal/service/wizard"
	getMonthAvailability "github.com/shidenryu/booking-service/internal/usecase/get_month_availability"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownEventType   = "unknown event type"
	msgInvalidDate        = "date must be formatted as YYYY-MM-DD"
	msgInvalidSlot        = "time slot is not recognized"
	msgSlotUnavailable    = "this time slot is not available"
	msgActivitiesNeeded   = "exactly 3 experiences must be selected"
	msgInvalidStep        = "step cannot be changed this way"
	msgMissingGuestIndex  = "guestIndex is required"
	msgInvalidGuestIndex  = "guest index is out of range"
	msgInvalidGuestType   = "unknown guest type"
	msgInvalidGuestSize   = "size does not fit the guest type"
	msgMissingGuestInfo   = "guestInfo payload is required"
)

type Handler struct {
	wizard       WizardService
	availability AvailabilityUseCase
	logger       Logger
}

func NewHandler(wizardSvc WizardService, availability AvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		wizard:       wizardSvc,
		availability: availability,
		logger:       logger,
	}
}

// Handle POST /api/v1/booking-flow/{sessionKey}/events
// Применяет одно событие мастера и возвращает обновлённое состояние
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionKey := mux.Vars(r)["sessionKey"]

	var req FlowEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-flow/{key}/events - Invalid request body: session=%s, error=%v", sessionKey, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ctx := r.Context()

	var (
		draft     *domain.Draft
		fieldErrs wizard.FieldErrors
		err       error
	)

	switch req.Type {
	case EventSelectDate:
		draft, err = h.wizard.SelectDate(ctx, sessionKey, req.Date)

	case EventSelectTime:
		if !h.slotSelectable(ctx, sessionKey, req.TimeSlot) {
			h.logger.Warn("POST /booking-flow/{key}/events - Slot not selectable: session=%s, slot=%s", sessionKey, req.TimeSlot)
			handlers.RespondConflict(w, wizard.CodeSlotTaken, msgSlotUnavailable)
			return
		}
		draft, err = h.wizard.SelectTime(ctx, sessionKey, req.TimeSlot)

	case EventToggleActivity:
		draft, err = h.wizard.ToggleActivity(ctx, sessionKey, req.ActivityID)

	case EventNext:
		draft, fieldErrs, err = h.wizard.Next(ctx, sessionKey)

	case EventBack:
		draft, err = h.wizard.Back(ctx, sessionKey)

	case EventEditStep:
		draft, err = h.wizard.EditStep(ctx, sessionKey, req.Step)

	case EventSetGuestInfo:
		if req.GuestInfo == nil {
			handlers.RespondBadRequest(w, msgMissingGuestInfo)
			return
		}
		draft, err = h.wizard.SetGuestInfo(ctx, sessionKey, req.GuestInfo.ToGuestInfoInput())

	case EventSetGuestType:
		if req.GuestIndex == nil {
			handlers.RespondBadRequest(w, msgMissingGuestIndex)
			return
		}
		draft, err = h.wizard.SetGuestType(ctx, sessionKey, *req.GuestIndex, domain.GuestType(req.GuestType))

	case EventSetGuestSize:
		if req.GuestIndex == nil {
			handlers.RespondBadRequest(w, msgMissingGuestIndex)
			return
		}
		draft, err = h.wizard.SetGuestSize(ctx, sessionKey, *req.GuestIndex, req.Size)

	case EventToggleTerms:
		draft, err = h.wizard.ToggleTerms(ctx, sessionKey)

	default:
		h.logger.Warn("POST /booking-flow/{key}/events - Unknown event type: session=%s, type=%s", sessionKey, req.Type)
		handlers.RespondBadRequest(w, msgUnknownEventType)
		return
	}

	if err != nil {
		h.respondWizardError(w, sessionKey, req.Type, err)
		return
	}

	h.logger.Info("POST /booking-flow/{key}/events - Event applied: session=%s, type=%s, step=%d",
		sessionKey, req.Type, draft.CurrentStep)
	handlers.RespondJSON(w, http.StatusOK, FlowResponse{
		SessionKey:  sessionKey,
		Draft:       draft,
		FieldErrors: fieldErrs,
	})
}

// slotSelectable проверяет статус слота по данным занятости на дату черновика.
// Любой сбой проверки (нет даты, нет данных, источник недоступен) трактуется
// в пользу гостя: слот считается выбираемым
func (h *Handler) slotSelectable(ctx context.Context, sessionKey, slot string) bool {
	draft, err := h.wizard.Restore(ctx, sessionKey, wizard.Overrides{})
	if err != nil || draft.Date == "" || len(draft.Date) < len(domain.MonthFormat) {
		return true
	}

	month := draft.Date[:len(domain.MonthFormat)]
	availability, err := h.availability.Execute(ctx, &getMonthAvailability.Request{Month: month})
	if err != nil {
		return true
	}

	return domain.IsSlotSelectable(availability.SlotStatusFor(draft.Date, slot))
}

// respondWizardError маппит ошибки машины состояний на HTTP ответы
func (h *Handler) respondWizardError(w http.ResponseWriter, sessionKey, eventType string, err error) {
	switch {
	case errors.Is(err, wizard.ErrInvalidDate):
		handlers.RespondBadRequest(w, msgInvalidDate)
	case errors.Is(err, wizard.ErrInvalidSlot):
		handlers.RespondBadRequest(w, msgInvalidSlot)
	case errors.Is(err, wizard.ErrActivitiesIncomplete):
		handlers.RespondBadRequest(w, msgActivitiesNeeded)
	case errors.Is(err, wizard.ErrInvalidStep):
		handlers.RespondBadRequest(w, msgInvalidStep)
	case errors.Is(err, wizard.ErrGuestIndexOutOfRange):
		handlers.RespondBadRequest(w, msgInvalidGuestIndex)
	case errors.Is(err, wizard.ErrInvalidGuestType):
		handlers.RespondBadRequest(w, msgInvalidGuestType)
	case errors.Is(err, wizard.ErrInvalidGuestSize):
		handlers.RespondBadRequest(w, msgInvalidGuestSize)
	default:
		h.logger.Error("POST /booking-flow/{key}/events - Failed to apply event: session=%s, type=%s, error=%v",
			sessionKey, eventType, err)
		handlers.RespondInternalError(w)
	}
}
