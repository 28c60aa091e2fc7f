package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/shidenryu/booking-service/internal/domain"
)

// Сообщения, которые видит гость. Внешняя система может прислать своё —
// тогда берётся оно.
const (
	msgSlotConflict   = "Sorry, this time slot was just booked by another guest. Please choose a different time."
	msgTimeout        = "Request timed out. Please try again."
	msgGenericFailure = "Something went wrong while submitting your booking. Please try again."
)

// DefaultSubmitTimeout клиентский таймаут отправки бронирования
const DefaultSubmitTimeout = 15 * time.Second

// Service машина состояний пятишагового мастера бронирования.
// Держит по одному черновику на ключ сессии; каждая мутация сохраняет
// снапшот (без транзиентных полей) в DraftStore.
type Service struct {
	store         DraftStore
	sink          SubmissionSink
	logger        Logger
	submitTimeout time.Duration

	// Защита от двойной отправки по одной сессии: пока отправка в полёте,
	// повторный Submit — no-op
	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewService создает новый экземпляр мастера бронирования
func NewService(store DraftStore, sink SubmissionSink, logger Logger) *Service {
	return &Service{
		store:         store,
		sink:          sink,
		logger:        logger,
		submitTimeout: DefaultSubmitTimeout,
		inflight:      make(map[string]struct{}),
	}
}

// load достает черновик сессии из хранилища
// Отсутствие или повреждение снапшота деградирует до чистого черновика —
// сбой хранилища никогда не блокирует бронирование
func (s *Service) load(ctx context.Context, key string) *domain.Draft {
	raw, err := s.store.Get(ctx, key)
	if err != nil {
		s.logger.Warn("wizard: draft store get failed for session=%s: %v", key, err)
		return domain.NewDraft()
	}
	if raw == "" {
		return domain.NewDraft()
	}

	draft := domain.NewDraft()
	if err := json.Unmarshal([]byte(raw), draft); err != nil {
		s.logger.Warn("wizard: corrupt draft snapshot for session=%s, starting fresh: %v", key, err)
		return domain.NewDraft()
	}

	sanitizeDraft(draft)
	return draft
}

// save сохраняет снапшот черновика
// Транзиентные поля (isSubmitting, lastError) в снапшот не попадают
func (s *Service) save(ctx context.Context, key string, draft *domain.Draft) {
	raw, err := json.Marshal(draft)
	if err != nil {
		s.logger.Error("wizard: failed to marshal draft for session=%s: %v", key, err)
		return
	}
	if err := s.store.Set(ctx, key, string(raw)); err != nil {
		// Персистентность — опциональная возможность: теряем снапшот, не бронирование
		s.logger.Warn("wizard: draft store set failed for session=%s: %v", key, err)
	}
}

// sanitizeDraft приводит восстановленный снапшот к инвариантам машины:
// шаг в [1,5], активности без дубликатов и не больше трёх, транзиентные
// поля сброшены
func sanitizeDraft(d *domain.Draft) {
	if d.CurrentStep < domain.StepDateSelect || d.CurrentStep > domain.StepConfirm {
		d.CurrentStep = domain.StepDateSelect
	}

	seen := make(map[string]struct{}, len(d.Activities))
	activities := make([]string, 0, domain.MaxActivities)
	for _, id := range d.Activities {
		if _, ok := seen[id]; ok {
			continue
		}
		if len(activities) >= domain.MaxActivities {
			break
		}
		seen[id] = struct{}{}
		activities = append(activities, id)
	}
	d.Activities = activities

	if d.Guests == nil {
		d.Guests = []domain.GuestEntry{}
	}

	// Залипший флаг отправки не должен пережить перезагрузку
	d.IsSubmitting = false
	d.LastError = ""
}

// SelectDate выбирает дату и сразу переводит на шаг выбора времени
func (s *Service) SelectDate(ctx context.Context, key, date string) (*domain.Draft, error) {
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		return nil, ErrInvalidDate
	}

	draft := s.load(ctx, key)
	draft.Date = date
	draft.CurrentStep = domain.StepTimeSelect
	draft.LastError = ""
	s.save(ctx, key, draft)

	s.logger.Info("wizard: session=%s selected date=%s", key, date)
	return draft, nil
}

// SelectTime выбирает слот и сразу переводит на шаг выбора активностей
// Короткая форма слота ("16:00") нормализуется к каноничной
func (s *Service) SelectTime(ctx context.Context, key, slot string) (*domain.Draft, error) {
	slot = domain.NormalizeSlotKey(slot)
	if !domain.IsSlotRange(slot) {
		return nil, ErrInvalidSlot
	}

	draft := s.load(ctx, key)
	draft.TimeSlot = slot
	draft.CurrentStep = domain.StepActivitySelect
	draft.LastError = ""
	s.save(ctx, key, draft)

	s.logger.Info("wizard: session=%s selected slot=%s", key, slot)
	return draft, nil
}

// ToggleActivity добавляет или убирает активность
// Уже выбранная всегда убирается; новая добавляется только пока выбрано
// меньше трёх — лишний выбор молча игнорируется (мягкий лимит)
func (s *Service) ToggleActivity(ctx context.Context, key, id string) (*domain.Draft, error) {
	draft := s.load(ctx, key)

	if draft.HasActivity(id) {
		filtered := make([]string, 0, len(draft.Activities))
		for _, a := range draft.Activities {
			if a != id {
				filtered = append(filtered, a)
			}
		}
		draft.Activities = filtered
	} else if len(draft.Activities) < domain.MaxActivities {
		draft.Activities = append(draft.Activities, id)
	}

	s.save(ctx, key, draft)
	return draft, nil
}

// AdvanceFromActivities переходит к данным гостя; доступно только при
// ровно трёх выбранных активностях
func (s *Service) AdvanceFromActivities(ctx context.Context, key string) (*domain.Draft, error) {
	draft := s.load(ctx, key)
	if !draft.ActivitiesComplete() {
		return draft, ErrActivitiesIncomplete
	}

	draft.CurrentStep = domain.StepGuestInfo
	draft.LastError = ""
	s.save(ctx, key, draft)
	return draft, nil
}

// SetGuestInfo обновляет переданные поля шага Guest Info без перехода
func (s *Service) SetGuestInfo(ctx context.Context, key string, input GuestInfoInput) (*domain.Draft, error) {
	draft := s.load(ctx, key)

	if input.Nickname != nil {
		draft.Nickname = *input.Nickname
	}
	if input.Email != nil {
		draft.Email = *input.Email
	}
	if input.NumberOfGuests != nil {
		draft.NumberOfGuests = *input.NumberOfGuests
		// При уменьшении числа гостей лишние костюмы отбрасываются
		if n := draft.NumberOfGuests; n >= 0 && len(draft.Guests) > n {
			draft.Guests = draft.Guests[:n]
		}
	}
	if input.RoomNumber != nil {
		draft.RoomNumber = *input.RoomNumber
	}
	if input.SpecialRequests != nil {
		draft.SpecialRequests = *input.SpecialRequests
	}

	s.save(ctx, key, draft)
	return draft, nil
}

// SetGuestType назначает тип гостя с индексом index
// Смена типа через границу взрослый/ребёнок сбрасывает размер на дефолт
// нового словаря; внутри словаря выбранный размер сохраняется
func (s *Service) SetGuestType(ctx context.Context, key string, index int, guestType domain.GuestType) (*domain.Draft, error) {
	if !guestType.IsValid() {
		return nil, ErrInvalidGuestType
	}

	draft := s.load(ctx, key)
	if index < 0 || index >= domain.MaxGuests || (draft.NumberOfGuests > 0 && index >= draft.NumberOfGuests) {
		return draft, ErrGuestIndexOutOfRange
	}

	// Недостающие слоты до index заполняются дефолтным взрослым костюмом
	for len(draft.Guests) <= index {
		draft.Guests = append(draft.Guests, domain.GuestEntry{
			Type: domain.GuestMan,
			Size: domain.DefaultAdultSize,
		})
	}

	entry := &draft.Guests[index]
	crossed := entry.Type.IsKid() != guestType.IsKid()
	entry.Type = guestType
	if crossed || !domain.IsValidSizeFor(guestType, entry.Size) {
		entry.Size = domain.DefaultSizeFor(guestType)
	}

	s.save(ctx, key, draft)
	return draft, nil
}

// SetGuestSize назначает размер костюма гостю с индексом index
func (s *Service) SetGuestSize(ctx context.Context, key string, index int, size string) (*domain.Draft, error) {
	draft := s.load(ctx, key)
	if index < 0 || index >= len(draft.Guests) {
		return draft, ErrGuestIndexOutOfRange
	}

	if !domain.IsValidSizeFor(draft.Guests[index].Type, size) {
		return draft, ErrInvalidGuestSize
	}

	draft.Guests[index].Size = size
	s.save(ctx, key, draft)
	return draft, nil
}

// AdvanceFromGuestInfo валидирует данные гостя и переходит к подтверждению
// При ошибках шаг не меняется, возвращается map поле→сообщение
func (s *Service) AdvanceFromGuestInfo(ctx context.Context, key string) (*domain.Draft, FieldErrors, error) {
	draft := s.load(ctx, key)

	fieldErrs := ValidateGuestInfo(draft)
	if !fieldErrs.Valid() {
		return draft, fieldErrs, nil
	}

	draft.CurrentStep = domain.StepConfirm
	draft.LastError = ""
	s.save(ctx, key, draft)
	return draft, nil, nil
}

// Next продвигает мастер с текущего шага
// Шаги даты и времени продвигаются только самим выбором (SelectDate,
// SelectTime), с подтверждения дальше некуда — для них возвращается
// ErrInvalidStep
func (s *Service) Next(ctx context.Context, key string) (*domain.Draft, FieldErrors, error) {
	draft := s.load(ctx, key)

	switch draft.CurrentStep {
	case domain.StepActivitySelect:
		d, err := s.AdvanceFromActivities(ctx, key)
		return d, nil, err
	case domain.StepGuestInfo:
		return s.AdvanceFromGuestInfo(ctx, key)
	default:
		return draft, nil, ErrInvalidStep
	}
}

// Back возвращается на предыдущий шаг; с первого шага — no-op
func (s *Service) Back(ctx context.Context, key string) (*domain.Draft, error) {
	draft := s.load(ctx, key)
	if draft.CurrentStep > domain.StepDateSelect {
		draft.CurrentStep--
		draft.LastError = ""
		s.save(ctx, key, draft)
	}
	return draft, nil
}

// EditStep переходит с подтверждения на любой более ранний шаг для правки,
// сохраняя все остальные поля черновика
func (s *Service) EditStep(ctx context.Context, key string, step int) (*domain.Draft, error) {
	if step < domain.StepDateSelect || step > domain.StepConfirm {
		return nil, ErrInvalidStep
	}

	draft := s.load(ctx, key)
	draft.CurrentStep = step
	draft.LastError = ""
	s.save(ctx, key, draft)
	return draft, nil
}

// ToggleTerms переключает согласие с условиями
func (s *Service) ToggleTerms(ctx context.Context, key string) (*domain.Draft, error) {
	draft := s.load(ctx, key)
	draft.AgreedToTerms = !draft.AgreedToTerms
	s.save(ctx, key, draft)
	return draft, nil
}

// Submit отправляет черновик во внешнюю систему приёма бронирований.
//
// Guard: без согласия с условиями и при уже идущей отправке — no-op
// (внешняя система не вызывается, состояние не меняется).
//
// Исходы:
//   - accepted: снапшот очищен, возвращается неизменяемое Summary
//   - conflict (slot_taken): слот сброшен, возврат на шаг выбора времени
//   - failed: шаг сохранён, выставлено сообщение об ошибке
func (s *Service) Submit(ctx context.Context, key string) (*Outcome, error) {
	draft := s.load(ctx, key)

	if !draft.AgreedToTerms {
		return nil, ErrTermsNotAgreed
	}

	s.mu.Lock()
	if _, busy := s.inflight[key]; busy {
		s.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	s.inflight[key] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inflight, key)
		s.mu.Unlock()
	}()

	draft.IsSubmitting = true
	draft.LastError = ""

	req := &SubmissionRequest{
		Date:            draft.Date,
		TimeSlot:        draft.TimeSlot,
		Activities:      draft.Activities,
		Nickname:        draft.Nickname,
		Email:           draft.Email,
		NumberOfGuests:  draft.NumberOfGuests,
		GuestSizes:      draft.GuestSizesString(),
		RoomNumber:      draft.RoomNumber,
		SpecialRequests: draft.SpecialRequests,
		AgreedToTerms:   draft.AgreedToTerms,
	}

	submitCtx, cancel := context.WithTimeout(ctx, s.submitTimeout)
	defer cancel()

	result, err := s.sink.Submit(submitCtx, req)
	draft.IsSubmitting = false

	if err != nil {
		message := msgGenericFailure
		if errors.Is(err, context.DeadlineExceeded) {
			message = msgTimeout
		}
		s.logger.Error("wizard: session=%s submission failed: %v", key, err)
		draft.LastError = message
		return &Outcome{Status: OutcomeFailed, Draft: draft, Message: message}, nil
	}

	if result.Success {
		// Успех: снапшот больше не нужен
		if err := s.store.Clear(ctx, key); err != nil {
			s.logger.Warn("wizard: failed to clear draft for session=%s: %v", key, err)
		}

		summary := &domain.Summary{
			BookingID:      result.BookingID,
			Date:           draft.Date,
			TimeSlot:       draft.TimeSlot,
			Activities:     draft.Activities,
			Nickname:       draft.Nickname,
			Email:          draft.Email,
			NumberOfGuests: draft.NumberOfGuests,
		}
		s.logger.Info("wizard: session=%s booking accepted, booking_id=%s", key, result.BookingID)
		return &Outcome{Status: OutcomeAccepted, Summary: summary}, nil
	}

	if result.ErrorCode == CodeSlotTaken {
		// Слот увели из-под заявки: чистим выбор и возвращаем на шаг времени
		message := result.Message
		if message == "" {
			message = msgSlotConflict
		}
		draft.TimeSlot = ""
		draft.CurrentStep = domain.StepTimeSelect
		draft.LastError = message
		s.save(ctx, key, draft)

		s.logger.Warn("wizard: session=%s slot conflict on submit", key)
		return &Outcome{Status: OutcomeConflict, Draft: draft, Message: message}, nil
	}

	// Любой другой код (или его отсутствие) — обычный сбой: шаг сохраняется,
	// гость может отправить повторно
	message := result.Message
	if message == "" {
		message = msgGenericFailure
	}
	draft.LastError = message
	s.logger.Warn("wizard: session=%s submission rejected: code=%s", key, result.ErrorCode)
	return &Outcome{Status: OutcomeFailed, Draft: draft, Message: message}, nil
}
