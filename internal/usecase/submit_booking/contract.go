package submit_booking

import (
	"context"

	"github.com/shidenryu/booking-service/internal/domain"
	"github.com/shidenryu/booking-service/internal/integrations/sheetsapi"
)

// SubmissionRelay интерфейс внешней системы учёта (таблица бронирований)
type SubmissionRelay interface {
	SubmitBooking(ctx context.Context, req *sheetsapi.SubmitRequest) (*sheetsapi.SubmitResponse, error)
}

// ArchiveRepository интерфейс локального архива переданных заявок
type ArchiveRepository interface {
	Create(ctx context.Context, req *domain.BookingRequest) (*domain.BookingRequest, error)
}

// Notifier интерфейс почтовых уведомлений о принятой заявке
type Notifier interface {
	NotifyAdmin(req *domain.BookingRequest) error
	SendGuestAutoReply(req *domain.BookingRequest) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
