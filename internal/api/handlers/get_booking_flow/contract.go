package get_booking_flow

import (
	"context"

	"github.com/shidenryu/booking-service/internal/domain"
	"github.com/shidenryu/booking-service/internal/service/wizard"
)

type WizardService interface {
	Restore(ctx context.Context, key string, ov wizard.Overrides) (*domain.Draft, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
