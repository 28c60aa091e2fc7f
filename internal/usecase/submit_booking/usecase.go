package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/shidenryu/booking-service/internal/domain"
	"github.com/shidenryu/booking-service/internal/integrations/sheetsapi"
	"github.com/shidenryu/booking-service/pkg/metrics"
)

const codeSlotTakenRelay = "SLOT_TAKEN"

// UseCase отправки заявки на бронирование во внешнюю систему учёта
type UseCase struct {
	relay    SubmissionRelay
	archive  ArchiveRepository
	notifier Notifier
	metrics  *metrics.Metrics
	logger   Logger
}

// NewUseCase создает новый экземпляр UseCase для отправки заявок
// archive, notifier и metrics необязательны (nil отключает соответствующий
// побочный эффект)
func NewUseCase(relay SubmissionRelay, archive ArchiveRepository, notifier Notifier, m *metrics.Metrics, logger Logger) *UseCase {
	return &UseCase{
		relay:    relay,
		archive:  archive,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
	}
}

// Execute выполняет отправку заявки:
// 1. Повторная серверная валидация заявки
// 2. Передача во внешнюю систему учёта (или локальный приём, если она не настроена)
// 3. Разбор бизнес-ответа: принято / слот занят / отклонено
// 4. Архивирование исхода и почтовые уведомления (best-effort)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// Шаг 1: Валидация
	if errs := validateRequest(req); len(errs) > 0 {
		uc.logger.Warn("submit_booking: validation failed: %s", strings.Join(errs, "; "))
		uc.countOutcome(CodeValidationError)
		return nil, fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, "; "))
	}

	// Шаг 2: Передача во внешнюю систему
	result, err := uc.relay.SubmitBooking(ctx, &sheetsapi.SubmitRequest{
		Date:            req.Date,
		TimeSlot:        req.TimeSlot,
		Activities:      req.Activities,
		Nickname:        req.Nickname,
		Email:           req.Email,
		NumberOfGuests:  req.NumberOfGuests,
		GuestSizes:      req.GuestSizes,
		RoomNumber:      req.RoomNumber,
		SpecialRequests: req.SpecialRequests,
		AgreedToTerms:   req.AgreedToTerms,
	})
	if err != nil {
		switch {
		case errors.Is(err, sheetsapi.ErrNotConfigured):
			// Внешняя система не настроена: принимаем локально, чтобы стенд
			// и превью работали без таблицы
			uc.logger.Warn("submit_booking: relay not configured, accepting locally")
			return uc.acceptLocally(ctx, req)
		case errors.Is(err, sheetsapi.ErrInvalidResponse):
			uc.logger.Error("submit_booking: unreadable relay response: %v", err)
			uc.archiveOutcome(ctx, req, "", domain.RelayFailed)
			uc.countOutcome(CodeParseError)
			return nil, fmt.Errorf("%w: %v", ErrRelayParse, err)
		default:
			uc.logger.Error("submit_booking: relay unreachable: %v", err)
			uc.archiveOutcome(ctx, req, "", domain.RelayFailed)
			uc.countOutcome(CodeNetworkError)
			return nil, fmt.Errorf("%w: %v", ErrRelayUnreachable, err)
		}
	}

	// Шаг 3: Разбор бизнес-ответа
	if !result.Success {
		if result.Error == codeSlotTakenRelay {
			uc.logger.Info("submit_booking: slot taken: date=%s slot=%s", req.Date, req.TimeSlot)
			uc.archiveOutcome(ctx, req, "", domain.RelayConflict)
			uc.countOutcome(CodeSlotTaken)
			return nil, fmt.Errorf("%w: %s %s", ErrSlotTaken, req.Date, req.TimeSlot)
		}
		uc.logger.Error("submit_booking: relay rejected: code=%s message=%s", result.Error, result.Message)
		uc.archiveOutcome(ctx, req, "", domain.RelayFailed)
		uc.countOutcome(CodeServerError)
		return nil, fmt.Errorf("%w: %s: %s", ErrRelayRejected, result.Error, result.Message)
	}

	// Шаг 4: Архив и уведомления
	archived := uc.archiveOutcome(ctx, req, result.BookingID, domain.RelayAccepted)
	uc.notify(archived)
	uc.countOutcome("accepted")

	uc.logger.Info("submit_booking: accepted, bookingId=%s", result.BookingID)
	return &Response{
		BookingID: result.BookingID,
		Message:   result.Message,
	}, nil
}

// acceptLocally принимает заявку без внешней системы, присваивая локальный
// идентификатор того же формата BK-<timestamp36><rand>
func (uc *UseCase) acceptLocally(ctx context.Context, req *Request) (*Response, error) {
	bookingID := generateBookingID()

	archived := uc.archiveOutcome(ctx, req, bookingID, domain.RelayAccepted)
	uc.notify(archived)
	uc.countOutcome("accepted")

	uc.logger.Info("submit_booking: accepted locally, bookingId=%s", bookingID)
	return &Response{
		BookingID: bookingID,
		Message:   "Booking request received",
	}, nil
}

// archiveOutcome записывает заявку в локальный архив; ошибки архива не
// влияют на исход отправки
func (uc *UseCase) archiveOutcome(ctx context.Context, req *Request, bookingID string, status domain.RelayStatus) *domain.BookingRequest {
	record := &domain.BookingRequest{
		BookingID:       bookingID,
		Date:            req.Date,
		TimeSlot:        req.TimeSlot,
		Activities:      req.Activities,
		Nickname:        req.Nickname,
		Email:           req.Email,
		NumberOfGuests:  req.NumberOfGuests,
		GuestSizes:      req.GuestSizes,
		RoomNumber:      req.RoomNumber,
		SpecialRequests: req.SpecialRequests,
		RelayStatus:     status,
	}

	if uc.archive == nil {
		return record
	}

	created, err := uc.archive.Create(ctx, record)
	if err != nil {
		uc.logger.Error("submit_booking: failed to archive request: %v", err)
		return record
	}
	return created
}

// notify рассылает почтовые уведомления о принятой заявке (best-effort)
func (uc *UseCase) notify(req *domain.BookingRequest) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.NotifyAdmin(req); err != nil {
		uc.logger.Error("submit_booking: admin notification failed: %v", err)
	}
	if err := uc.notifier.SendGuestAutoReply(req); err != nil {
		uc.logger.Error("submit_booking: guest auto-reply failed: %v", err)
	}
}

func (uc *UseCase) countOutcome(outcome string) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.SubmissionsTotal.WithLabelValues(outcome).Inc()
}

const bookingIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateBookingID генерирует идентификатор вида BK-MB3K2J1XQ7ZP:
// метка времени в base36 плюс 4 случайных символа
func generateBookingID() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))

	var sb strings.Builder
	sb.WriteString("BK-")
	sb.WriteString(ts)
	for i := 0; i < 4; i++ {
		sb.WriteByte(bookingIDAlphabet[rand.Intn(len(bookingIDAlphabet))])
	}
	return sb.String()
}
