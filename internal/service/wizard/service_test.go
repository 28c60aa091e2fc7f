package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shidenryu/booking-service/internal/domain"
)

// testLogger глушит логи в тестах
type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

// fakeStore in-memory хранилище с инъекцией ошибок
type fakeStore struct {
	mu      sync.Mutex
	data    map[string]string
	getErr  error
	setErr  error
	cleared []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string]string)}
}

func (s *fakeStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return "", s.getErr
	}
	return s.data[key], nil
}

func (s *fakeStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.data[key] = value
	return nil
}

func (s *fakeStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	s.cleared = append(s.cleared, key)
	return nil
}

// fakeSink внешняя система приёма со сценарным ответом
type fakeSink struct {
	mu      sync.Mutex
	result  *SubmissionResult
	err     error
	calls   int
	block   chan struct{}
	lastReq *SubmissionRequest
}

func (s *fakeSink) Submit(ctx context.Context, req *SubmissionRequest) (*SubmissionResult, error) {
	s.mu.Lock()
	s.calls++
	s.lastReq = req
	block := s.block
	s.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *fakeSink) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newTestService(store *fakeStore, sink *fakeSink) *Service {
	return NewService(store, sink, testLogger{})
}

// completeDraft доводит сессию до шага подтверждения с согласием
func completeDraft(t *testing.T, svc *Service, key string) {
	t.Helper()
	ctx := context.Background()

	_, err := svc.SelectDate(ctx, key, "2026-03-15")
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, key, "16:00-17:30")
	require.NoError(t, err)
	for _, id := range []string{"tate", "tea", "origami"} {
		_, err = svc.ToggleActivity(ctx, key, id)
		require.NoError(t, err)
	}
	_, _, err = svc.Next(ctx, key)
	require.NoError(t, err)

	nickname, email := "Taro", "taro@example.com"
	guests, room := 2, "507"
	_, err = svc.SetGuestInfo(ctx, key, GuestInfoInput{
		Nickname:       &nickname,
		Email:          &email,
		NumberOfGuests: &guests,
		RoomNumber:     &room,
	})
	require.NoError(t, err)
	_, err = svc.SetGuestType(ctx, key, 0, domain.GuestMan)
	require.NoError(t, err)
	_, err = svc.SetGuestType(ctx, key, 1, domain.GuestWoman)
	require.NoError(t, err)

	draft, fieldErrs, err := svc.Next(ctx, key)
	require.NoError(t, err)
	require.True(t, fieldErrs.Valid(), "unexpected field errors: %v", fieldErrs)
	require.Equal(t, domain.StepConfirm, draft.CurrentStep)

	_, err = svc.ToggleTerms(ctx, key)
	require.NoError(t, err)
}

func TestSelectDate(t *testing.T) {
	svc := newTestService(newFakeStore(), &fakeSink{})
	ctx := context.Background()

	t.Run("valid date advances to time step", func(t *testing.T) {
		draft, err := svc.SelectDate(ctx, "s1", "2026-03-15")
		require.NoError(t, err)
		assert.Equal(t, "2026-03-15", draft.Date)
		assert.Equal(t, domain.StepTimeSelect, draft.CurrentStep)
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		_, err := svc.SelectDate(ctx, "s1", "15.03.2026")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestSelectTime(t *testing.T) {
	svc := newTestService(newFakeStore(), &fakeSink{})
	ctx := context.Background()

	t.Run("short key is normalized to canonical range", func(t *testing.T) {
		draft, err := svc.SelectTime(ctx, "s1", "18:00")
		require.NoError(t, err)
		assert.Equal(t, "18:00-19:30", draft.TimeSlot)
		assert.Equal(t, domain.StepActivitySelect, draft.CurrentStep)
	})

	t.Run("unknown slot is rejected", func(t *testing.T) {
		_, err := svc.SelectTime(ctx, "s1", "12:00-13:30")
		assert.ErrorIs(t, err, ErrInvalidSlot)
	})
}

func TestToggleActivity(t *testing.T) {
	svc := newTestService(newFakeStore(), &fakeSink{})
	ctx := context.Background()

	t.Run("toggle adds and removes", func(t *testing.T) {
		draft, err := svc.ToggleActivity(ctx, "s1", "tate")
		require.NoError(t, err)
		assert.Equal(t, []string{"tate"}, draft.Activities)

		draft, err = svc.ToggleActivity(ctx, "s1", "tate")
		require.NoError(t, err)
		assert.Empty(t, draft.Activities)
	})

	t.Run("fourth selection is silently ignored", func(t *testing.T) {
		for _, id := range []string{"tate", "tea", "origami"} {
			_, err := svc.ToggleActivity(ctx, "s2", id)
			require.NoError(t, err)
		}

		draft, err := svc.ToggleActivity(ctx, "s2", "photo")
		require.NoError(t, err)
		assert.Equal(t, []string{"tate", "tea", "origami"}, draft.Activities)
	})

	t.Run("already selected can still be removed at the cap", func(t *testing.T) {
		draft, err := svc.ToggleActivity(ctx, "s2", "tea")
		require.NoError(t, err)
		assert.Equal(t, []string{"tate", "origami"}, draft.Activities)
	})
}

func TestNext(t *testing.T) {
	svc := newTestService(newFakeStore(), &fakeSink{})
	ctx := context.Background()

	t.Run("activities step requires exactly three", func(t *testing.T) {
		_, err := svc.SelectDate(ctx, "s1", "2026-03-15")
		require.NoError(t, err)
		_, err = svc.SelectTime(ctx, "s1", "16:00-17:30")
		require.NoError(t, err)
		_, err = svc.ToggleActivity(ctx, "s1", "tate")
		require.NoError(t, err)

		draft, _, err := svc.Next(ctx, "s1")
		assert.ErrorIs(t, err, ErrActivitiesIncomplete)
		assert.Equal(t, domain.StepActivitySelect, draft.CurrentStep)
	})

	t.Run("guest info step returns field errors without advancing", func(t *testing.T) {
		for _, id := range []string{"tea", "origami"} {
			_, err := svc.ToggleActivity(ctx, "s1", id)
			require.NoError(t, err)
		}
		_, _, err := svc.Next(ctx, "s1")
		require.NoError(t, err)

		draft, fieldErrs, err := svc.Next(ctx, "s1")
		require.NoError(t, err)
		assert.False(t, fieldErrs.Valid())
		assert.Contains(t, fieldErrs, "nickname")
		assert.Equal(t, domain.StepGuestInfo, draft.CurrentStep)
	})

	t.Run("date step cannot advance via next", func(t *testing.T) {
		_, _, err := svc.Next(ctx, "fresh")
		assert.ErrorIs(t, err, ErrInvalidStep)
	})
}

func TestGuestTypeAndSize(t *testing.T) {
	svc := newTestService(newFakeStore(), &fakeSink{})
	ctx := context.Background()

	guests := 3
	_, err := svc.SetGuestInfo(ctx, "s1", GuestInfoInput{NumberOfGuests: &guests})
	require.NoError(t, err)

	t.Run("entries extend with adult defaults", func(t *testing.T) {
		draft, err := svc.SetGuestType(ctx, "s1", 2, domain.GuestWoman)
		require.NoError(t, err)
		require.Len(t, draft.Guests, 3)
		assert.Equal(t, domain.GuestMan, draft.Guests[0].Type)
		assert.Equal(t, domain.DefaultAdultSize, draft.Guests[0].Size)
		assert.Equal(t, domain.GuestWoman, draft.Guests[2].Type)
	})

	t.Run("crossing adult-kid boundary resets size", func(t *testing.T) {
		draft, err := svc.SetGuestSize(ctx, "s1", 0, "XL")
		require.NoError(t, err)
		assert.Equal(t, "XL", draft.Guests[0].Size)

		draft, err = svc.SetGuestType(ctx, "s1", 0, domain.GuestBoy)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultKidsSize, draft.Guests[0].Size)
	})

	t.Run("size outside vocabulary is rejected", func(t *testing.T) {
		_, err := svc.SetGuestSize(ctx, "s1", 0, "XL")
		assert.ErrorIs(t, err, ErrInvalidGuestSize)
	})

	t.Run("index beyond guest count is rejected", func(t *testing.T) {
		_, err := svc.SetGuestType(ctx, "s1", 3, domain.GuestMan)
		assert.ErrorIs(t, err, ErrGuestIndexOutOfRange)
	})

	t.Run("reducing guest count truncates costumes", func(t *testing.T) {
		fewer := 1
		draft, err := svc.SetGuestInfo(ctx, "s1", GuestInfoInput{NumberOfGuests: &fewer})
		require.NoError(t, err)
		assert.Len(t, draft.Guests, 1)
	})
}

func TestBackAndEditStep(t *testing.T) {
	svc := newTestService(newFakeStore(), &fakeSink{})
	ctx := context.Background()

	_, err := svc.SelectDate(ctx, "s1", "2026-03-15")
	require.NoError(t, err)

	t.Run("back steps one back and stops at the first step", func(t *testing.T) {
		draft, err := svc.Back(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, domain.StepDateSelect, draft.CurrentStep)

		draft, err = svc.Back(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, domain.StepDateSelect, draft.CurrentStep)
	})

	t.Run("edit step keeps collected fields", func(t *testing.T) {
		draft, err := svc.EditStep(ctx, "s1", domain.StepTimeSelect)
		require.NoError(t, err)
		assert.Equal(t, domain.StepTimeSelect, draft.CurrentStep)
		assert.Equal(t, "2026-03-15", draft.Date)
	})

	t.Run("out of range step is rejected", func(t *testing.T) {
		_, err := svc.EditStep(ctx, "s1", 6)
		assert.ErrorIs(t, err, ErrInvalidStep)
	})
}

func TestSubmitGuards(t *testing.T) {
	t.Run("submit without agreed terms never calls the sink", func(t *testing.T) {
		sink := &fakeSink{}
		svc := newTestService(newFakeStore(), sink)

		_, err := svc.Submit(context.Background(), "s1")
		assert.ErrorIs(t, err, ErrTermsNotAgreed)
		assert.Zero(t, sink.callCount())
	})

	t.Run("second submit while first is in flight is rejected", func(t *testing.T) {
		block := make(chan struct{})
		sink := &fakeSink{
			result: &SubmissionResult{Success: true, BookingID: "BK-TEST"},
			block:  block,
		}
		store := newFakeStore()
		svc := newTestService(store, sink)
		completeDraft(t, svc, "s1")

		done := make(chan error, 1)
		go func() {
			_, err := svc.Submit(context.Background(), "s1")
			done <- err
		}()

		// Ждём, пока первый Submit займёт слот
		require.Eventually(t, func() bool {
			return sink.callCount() == 1
		}, time.Second, 5*time.Millisecond)

		_, err := svc.Submit(context.Background(), "s1")
		assert.ErrorIs(t, err, ErrSubmissionInFlight)

		close(block)
		require.NoError(t, <-done)
		assert.Equal(t, 1, sink.callCount())
	})
}

func TestSubmitOutcomes(t *testing.T) {
	ctx := context.Background()

	t.Run("accepted clears the snapshot and returns a summary", func(t *testing.T) {
		sink := &fakeSink{result: &SubmissionResult{Success: true, BookingID: "BK-1ABC"}}
		store := newFakeStore()
		svc := newTestService(store, sink)
		completeDraft(t, svc, "s1")

		outcome, err := svc.Submit(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, OutcomeAccepted, outcome.Status)
		require.NotNil(t, outcome.Summary)
		assert.Equal(t, "BK-1ABC", outcome.Summary.BookingID)
		assert.Equal(t, "2026-03-15", outcome.Summary.Date)
		assert.Contains(t, store.cleared, "s1")

		// Черновик после успеха начинается заново
		fresh, err := svc.Restore(ctx, "s1", Overrides{})
		require.NoError(t, err)
		assert.Equal(t, domain.StepDateSelect, fresh.CurrentStep)
	})

	t.Run("submission request carries serialized guest sizes", func(t *testing.T) {
		sink := &fakeSink{result: &SubmissionResult{Success: true, BookingID: "BK-2"}}
		svc := newTestService(newFakeStore(), sink)
		completeDraft(t, svc, "s1")

		_, err := svc.Submit(ctx, "s1")
		require.NoError(t, err)
		require.NotNil(t, sink.lastReq)
		assert.Equal(t, "Man-M,Woman-M", sink.lastReq.GuestSizes)
		assert.Equal(t, "16:00-17:30", sink.lastReq.TimeSlot)
	})

	t.Run("slot conflict returns to time step with cleared slot", func(t *testing.T) {
		sink := &fakeSink{result: &SubmissionResult{Success: false, ErrorCode: CodeSlotTaken}}
		store := newFakeStore()
		svc := newTestService(store, sink)
		completeDraft(t, svc, "s1")

		outcome, err := svc.Submit(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, OutcomeConflict, outcome.Status)
		require.NotNil(t, outcome.Draft)
		assert.Empty(t, outcome.Draft.TimeSlot)
		assert.Equal(t, domain.StepTimeSelect, outcome.Draft.CurrentStep)
		assert.NotEmpty(t, outcome.Message)

		// Очистка слота персистится
		var persisted domain.Draft
		require.NoError(t, json.Unmarshal([]byte(store.data["s1"]), &persisted))
		assert.Empty(t, persisted.TimeSlot)
		assert.Equal(t, domain.StepTimeSelect, persisted.CurrentStep)
	})

	t.Run("other rejection keeps the step and sets a message", func(t *testing.T) {
		sink := &fakeSink{result: &SubmissionResult{Success: false, ErrorCode: CodeServerError, Message: "spreadsheet is down"}}
		svc := newTestService(newFakeStore(), sink)
		completeDraft(t, svc, "s1")

		outcome, err := svc.Submit(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, OutcomeFailed, outcome.Status)
		assert.Equal(t, domain.StepConfirm, outcome.Draft.CurrentStep)
		assert.Equal(t, "spreadsheet is down", outcome.Message)
	})

	t.Run("transport error maps to failed with timeout message", func(t *testing.T) {
		sink := &fakeSink{err: context.DeadlineExceeded}
		svc := newTestService(newFakeStore(), sink)
		completeDraft(t, svc, "s1")

		outcome, err := svc.Submit(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, OutcomeFailed, outcome.Status)
		assert.Equal(t, msgTimeout, outcome.Message)
		assert.False(t, outcome.Draft.IsSubmitting)
	})

	t.Run("sink error other than timeout uses generic message", func(t *testing.T) {
		sink := &fakeSink{err: errors.New("connection refused")}
		svc := newTestService(newFakeStore(), sink)
		completeDraft(t, svc, "s1")

		outcome, err := svc.Submit(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, OutcomeFailed, outcome.Status)
		assert.Equal(t, msgGenericFailure, outcome.Message)
	})
}

func TestStoreDegradation(t *testing.T) {
	ctx := context.Background()

	t.Run("store get failure falls back to a fresh draft", func(t *testing.T) {
		store := newFakeStore()
		store.getErr = errors.New("redis: connection refused")
		svc := newTestService(store, &fakeSink{})

		draft, err := svc.Restore(ctx, "s1", Overrides{})
		require.NoError(t, err)
		assert.Equal(t, domain.StepDateSelect, draft.CurrentStep)
	})

	t.Run("corrupt snapshot falls back to a fresh draft", func(t *testing.T) {
		store := newFakeStore()
		store.data["s1"] = "{not json"
		svc := newTestService(store, &fakeSink{})

		draft, err := svc.Restore(ctx, "s1", Overrides{})
		require.NoError(t, err)
		assert.Equal(t, domain.StepDateSelect, draft.CurrentStep)
	})

	t.Run("store set failure does not block progress", func(t *testing.T) {
		store := newFakeStore()
		store.setErr = errors.New("redis: connection refused")
		svc := newTestService(store, &fakeSink{})

		draft, err := svc.SelectDate(ctx, "s1", "2026-03-15")
		require.NoError(t, err)
		assert.Equal(t, domain.StepTimeSelect, draft.CurrentStep)
	})
}
