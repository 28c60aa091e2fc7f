package get_month_availability

import (
	"context"

	"github.com/shidenryu/booking-service/internal/integrations/sheetsapi"
)

// AvailabilitySource интерфейс источника данных о занятости слотов
type AvailabilitySource interface {
	GetAvailability(ctx context.Context, month string) (*sheetsapi.AvailabilityResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
