package submit_booking

import "errors"

var (
	// ErrValidation возвращается при некорректных данных заявки
	// Сообщения для гостя дописываются через %w-обёртку
	ErrValidation = errors.New("submit_booking: validation failed")

	// ErrSlotTaken возвращается, когда внешняя система сообщает, что слот
	// уже занят. Единственный код, требующий особого перехода в мастере.
	ErrSlotTaken = errors.New("submit_booking: slot is no longer available")

	// ErrRelayRejected возвращается, когда внешняя система отклонила заявку
	ErrRelayRejected = errors.New("submit_booking: relay rejected the request")

	// ErrRelayParse возвращается при нечитаемом ответе внешней системы
	ErrRelayParse = errors.New("submit_booking: relay response is unreadable")

	// ErrRelayUnreachable возвращается при сетевой недоступности внешней
	// системы
	ErrRelayUnreachable = errors.New("submit_booking: relay is unreachable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)

// Коды исходов для wire-протокола и метрик
const (
	CodeSlotTaken       = "slot_taken"
	CodeValidationError = "validation_error"
	CodeServerError     = "server_error"
	CodeParseError      = "parse_error"
	CodeTimeout         = "timeout"
	CodeNetworkError    = "network_error"
)

// ErrorCode маппит ошибку usecase в wire-код исхода
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return CodeValidationError
	case errors.Is(err, ErrSlotTaken):
		return CodeSlotTaken
	case errors.Is(err, ErrRelayParse):
		return CodeParseError
	case errors.Is(err, ErrRelayUnreachable):
		return CodeNetworkError
	default:
		return CodeServerError
	}
}
