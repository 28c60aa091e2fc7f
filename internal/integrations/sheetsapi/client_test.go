package sheetsapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shidenryu/booking-service/internal/domain"
)

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-key", 5*time.Second, testLogger{})
}

func TestGetAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("dispatches action and month, decodes days", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "getAvailability", r.URL.Query().Get("action"))
			assert.Equal(t, "2026-03", r.URL.Query().Get("month"))
			assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

			json.NewEncoder(w).Encode(AvailabilityResponse{
				Month: "2026-03",
				Days: domain.MonthData{
					"2026-03-15": {"16:00": domain.SlotBooked},
				},
			})
		})

		resp, err := client.GetAvailability(ctx, "2026-03")
		require.NoError(t, err)
		assert.Equal(t, "2026-03", resp.Month)
		assert.Equal(t, domain.SlotBooked, resp.Days["2026-03-15"]["16:00"])
	})

	t.Run("non-200 status is an invalid response", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.GetAvailability(ctx, "2026-03")
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("unconfigured url short-circuits", func(t *testing.T) {
		client := NewClient("", "", time.Second, testLogger{})
		_, err := client.GetAvailability(ctx, "2026-03")
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}

func TestGetServices(t *testing.T) {
	ctx := context.Background()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "getServices", r.URL.Query().Get("action"))
		json.NewEncoder(w).Encode(ServicesResponse{
			Services: []domain.Service{{ID: "tate", Name: "Samurai Sword Experience"}},
		})
	})

	resp, err := client.GetServices(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Services, 1)
	assert.Equal(t, "tate", resp.Services[0].ID)
}

func TestSubmitBooking(t *testing.T) {
	ctx := context.Background()
	submitReq := &SubmitRequest{
		Date:     "2026-03-15",
		TimeSlot: "16:00-17:30",
		Nickname: "Taro",
	}

	t.Run("success response is decoded", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "submitBooking", r.URL.Query().Get("action"))

			var got SubmitRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, "2026-03-15", got.Date)

			json.NewEncoder(w).Encode(SubmitResponse{Success: true, BookingID: "BK-1ABC"})
		})

		resp, err := client.SubmitBooking(ctx, submitReq)
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "BK-1ABC", resp.BookingID)
	})

	t.Run("business rejection with error status is not a transport error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(SubmitResponse{Success: false, Error: "SLOT_TAKEN"})
		})

		resp, err := client.SubmitBooking(ctx, submitReq)
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "SLOT_TAKEN", resp.Error)
	})

	t.Run("unreadable body is an invalid response", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>gateway error</html>"))
		})

		_, err := client.SubmitBooking(ctx, submitReq)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("unconfigured url short-circuits", func(t *testing.T) {
		client := NewClient("", "", time.Second, testLogger{})
		_, err := client.SubmitBooking(ctx, submitReq)
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}
