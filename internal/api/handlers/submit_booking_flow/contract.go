package submit_booking_flow

import (
	"context"

	"github.com/shidenryu/booking-service/internal/service/wizard"
)

type WizardService interface {
	Submit(ctx context.Context, key string) (*wizard.Outcome, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
