package apply_flow_event

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shidenryu/booking-service/internal/domain"
	"github.com/shidenryu/booking-service/internal/infra/draftstore"
	"github.com/shidenryu/booking-service/internal/service/wizard"
	getMonthAvailability "github.com/shidenryu/booking-service/internal/usecase/get_month_availability"
	"github.com/shidenryu/booking-service/pkg/ptr"
)

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

type noopSink struct{}

func (noopSink) Submit(context.Context, *wizard.SubmissionRequest) (*wizard.SubmissionResult, error) {
	return &wizard.SubmissionResult{Success: true, BookingID: "BK-TEST"}, nil
}

// fakeAvailability отдаёт фиксированную занятость на месяц
type fakeAvailability struct {
	days domain.MonthData
}

func (f *fakeAvailability) Execute(_ context.Context, req *getMonthAvailability.Request) (*getMonthAvailability.Response, error) {
	return &getMonthAvailability.Response{
		Month: req.Month,
		Days:  f.days,
	}, nil
}

func newTestRouter(availability AvailabilityUseCase) (*mux.Router, *wizard.Service) {
	wizardSvc := wizard.NewService(draftstore.NewMemoryStore(), noopSink{}, testLogger{})
	handler := NewHandler(wizardSvc, availability, testLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/booking-flow/{sessionKey}/events", handler.Handle).Methods(http.MethodPost)
	return r, wizardSvc
}

func postEvent(t *testing.T, router *mux.Router, sessionKey string, event FlowEventRequest) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(event)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/booking-flow/"+sessionKey+"/events", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeFlow(t *testing.T, rec *httptest.ResponseRecorder) FlowResponse {
	t.Helper()
	var resp FlowResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandle(t *testing.T) {
	t.Run("select date advances to time step", func(t *testing.T) {
		router, _ := newTestRouter(&fakeAvailability{})

		rec := postEvent(t, router, "s1", FlowEventRequest{Type: EventSelectDate, Date: "2026-03-15"})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeFlow(t, rec)
		assert.Equal(t, domain.StepTimeSelect, resp.Draft.CurrentStep)
		assert.Equal(t, "2026-03-15", resp.Draft.Date)
	})

	t.Run("booked slot is rejected with conflict", func(t *testing.T) {
		router, _ := newTestRouter(&fakeAvailability{
			days: domain.MonthData{
				"2026-03-15": {"16:00-17:30": domain.SlotBooked},
			},
		})

		rec := postEvent(t, router, "s1", FlowEventRequest{Type: EventSelectDate, Date: "2026-03-15"})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = postEvent(t, router, "s1", FlowEventRequest{Type: EventSelectTime, TimeSlot: "16:00-17:30"})
		assert.Equal(t, http.StatusConflict, rec.Code)

		// Свободный слот того же дня проходит
		rec = postEvent(t, router, "s1", FlowEventRequest{Type: EventSelectTime, TimeSlot: "18:00-19:30"})
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeFlow(t, rec)
		assert.Equal(t, "18:00-19:30", resp.Draft.TimeSlot)
	})

	t.Run("next on incomplete activities is a bad request", func(t *testing.T) {
		router, _ := newTestRouter(&fakeAvailability{})

		postEvent(t, router, "s1", FlowEventRequest{Type: EventSelectDate, Date: "2026-03-15"})
		postEvent(t, router, "s1", FlowEventRequest{Type: EventSelectTime, TimeSlot: "16:00-17:30"})
		postEvent(t, router, "s1", FlowEventRequest{Type: EventToggleActivity, ActivityID: "tate"})

		rec := postEvent(t, router, "s1", FlowEventRequest{Type: EventNext})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("next from guest info returns field errors in the body", func(t *testing.T) {
		router, _ := newTestRouter(&fakeAvailability{})

		postEvent(t, router, "s1", FlowEventRequest{Type: EventSelectDate, Date: "2026-03-15"})
		postEvent(t, router, "s1", FlowEventRequest{Type: EventSelectTime, TimeSlot: "16:00-17:30"})
		for _, id := range []string{"tate", "tea", "origami"} {
			postEvent(t, router, "s1", FlowEventRequest{Type: EventToggleActivity, ActivityID: id})
		}
		rec := postEvent(t, router, "s1", FlowEventRequest{Type: EventNext})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = postEvent(t, router, "s1", FlowEventRequest{Type: EventNext})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeFlow(t, rec)
		assert.Equal(t, domain.StepGuestInfo, resp.Draft.CurrentStep)
		assert.Contains(t, resp.FieldErrors, "nickname")
	})

	t.Run("guest info and costume events update the draft", func(t *testing.T) {
		router, _ := newTestRouter(&fakeAvailability{})

		rec := postEvent(t, router, "s1", FlowEventRequest{
			Type: EventSetGuestInfo,
			GuestInfo: &GuestInfoPayload{
				Nickname:       ptr.Ptr("Taro"),
				Email:          ptr.Ptr("taro@example.com"),
				NumberOfGuests: ptr.Ptr(2),
				RoomNumber:     ptr.Ptr("507"),
			},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = postEvent(t, router, "s1", FlowEventRequest{Type: EventSetGuestType, GuestIndex: ptr.Ptr(1), GuestType: "Girl"})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeFlow(t, rec)
		require.Len(t, resp.Draft.Guests, 2)
		assert.Equal(t, domain.GuestGirl, resp.Draft.Guests[1].Type)
		assert.Equal(t, domain.DefaultKidsSize, resp.Draft.Guests[1].Size)
	})

	t.Run("unknown event type is a bad request", func(t *testing.T) {
		router, _ := newTestRouter(&fakeAvailability{})

		rec := postEvent(t, router, "s1", FlowEventRequest{Type: "launch_missiles"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing guest index is a bad request", func(t *testing.T) {
		router, _ := newTestRouter(&fakeAvailability{})

		rec := postEvent(t, router, "s1", FlowEventRequest{Type: EventSetGuestSize, Size: "L"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
