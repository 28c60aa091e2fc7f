package list_booking_requests

import (
	"context"

	"github.com/shidenryu/booking-service/internal/service/bookingrequests/models"
)

type BookingRequestsService interface {
	List(ctx context.Context, req *models.ListRequestsRequest) (*models.RequestListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
