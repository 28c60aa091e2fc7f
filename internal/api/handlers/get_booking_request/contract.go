package get_booking_request

import (
	"context"

	"github.com/shidenryu/booking-service/internal/service/bookingrequests/models"
)

type BookingRequestsService interface {
	GetByID(ctx context.Context, id int64) (*models.RequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
