package wizard

import "github.com/shidenryu/booking-service/internal/domain"

// Коды ошибок внешней системы приёма бронирований
const (
	CodeSlotTaken       = "slot_taken"
	CodeValidationError = "validation_error"
	CodeServerError     = "server_error"
	CodeParseError      = "parse_error"
	CodeTimeout         = "timeout"
	CodeNetworkError    = "network_error"
)

// SubmissionRequest подмножество черновика, уходящее во внешнюю систему
type SubmissionRequest struct {
	Date            string   `json:"date"`
	TimeSlot        string   `json:"timeSlot"`
	Activities      []string `json:"activities"`
	Nickname        string   `json:"nickname"`
	Email           string   `json:"email"`
	NumberOfGuests  int      `json:"numberOfGuests"`
	GuestSizes      string   `json:"guestSizes"` // "Man-L,Woman-M"
	RoomNumber      string   `json:"roomNumber"`
	SpecialRequests string   `json:"specialRequests,omitempty"`
	AgreedToTerms   bool     `json:"agreedToTerms"`
}

// SubmissionResult ответ внешней системы
// Любой код кроме slot_taken (включая его отсутствие) трактуется как
// обычный сбой отправки
type SubmissionResult struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId,omitempty"`
	ErrorCode string `json:"error,omitempty"`
	Message   string `json:"message,omitempty"`
}

// OutcomeStatus исход отправки с точки зрения машины состояний
type OutcomeStatus string

const (
	OutcomeAccepted OutcomeStatus = "accepted"
	OutcomeConflict OutcomeStatus = "conflict"
	OutcomeFailed   OutcomeStatus = "failed"
)

// Outcome результат Submit
// Accepted несёт Summary, остальные исходы — обновлённый черновик
type Outcome struct {
	Status  OutcomeStatus
	Summary *domain.Summary
	Draft   *domain.Draft
	Message string
}

// Overrides переопределения из URL при восстановлении черновика
// Применяются ПОСЛЕ снапшота и имеют приоритет над ним
type Overrides struct {
	Date      string // ?date=YYYY-MM-DD — также переводит на шаг выбора времени
	Preselect string // ?preselect=<activity id> — добавляется к выбранным
}

// GuestInfoInput частичное обновление полей шага Guest Info
// nil-поле не трогает текущее значение
type GuestInfoInput struct {
	Nickname        *string
	Email           *string
	NumberOfGuests  *int
	RoomNumber      *string
	SpecialRequests *string
}

// FieldErrors ошибки валидации по полям; пустая map = валидно
type FieldErrors map[string]string

// Valid возвращает true, если ошибок нет
func (f FieldErrors) Valid() bool {
	return len(f) == 0
}
