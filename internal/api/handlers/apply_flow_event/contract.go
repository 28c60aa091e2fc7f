package apply_flow_event

import (
	"context"

	"github.com/shidenryu/booking-service/internal/domain"
	"github.com/shidenryu/booking-service/internal/service/wizard"
	getMonthAvailability "github.com/shidenryu/booking-service/internal/usecase/get_month_availability"
)

type WizardService interface {
	Restore(ctx context.Context, key string, ov wizard.Overrides) (*domain.Draft, error)
	SelectDate(ctx context.Context, key, date string) (*domain.Draft, error)
	SelectTime(ctx context.Context, key, slot string) (*domain.Draft, error)
	ToggleActivity(ctx context.Context, key, id string) (*domain.Draft, error)
	Next(ctx context.Context, key string) (*domain.Draft, wizard.FieldErrors, error)
	Back(ctx context.Context, key string) (*domain.Draft, error)
	EditStep(ctx context.Context, key string, step int) (*domain.Draft, error)
	SetGuestInfo(ctx context.Context, key string, input wizard.GuestInfoInput) (*domain.Draft, error)
	SetGuestType(ctx context.Context, key string, index int, guestType domain.GuestType) (*domain.Draft, error)
	SetGuestSize(ctx context.Context, key string, index int, size string) (*domain.Draft, error)
	ToggleTerms(ctx context.Context, key string) (*domain.Draft, error)
}

type AvailabilityUseCase interface {
	Execute(ctx context.Context, req *getMonthAvailability.Request) (*getMonthAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
