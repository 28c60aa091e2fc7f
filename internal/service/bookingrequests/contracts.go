package bookingrequests

import (
	"context"

	"github.com/shidenryu/booking-service/internal/domain"
)

// RequestRepository интерфейс архива переданных заявок
type RequestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error)
	ListWithFilter(ctx context.Context, filter domain.BookingRequestsFilter) ([]*domain.BookingRequest, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
