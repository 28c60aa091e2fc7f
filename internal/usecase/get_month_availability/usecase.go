package get_month_availability

import (
	"context"
	"time"

	"github.com/shidenryu/booking-service/internal/domain"
)

// UseCase use case получения и классификации занятости за месяц
type UseCase struct {
	source AvailabilitySource
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(source AvailabilitySource, logger Logger) *UseCase {
	return &UseCase{
		source: source,
		logger: logger,
	}
}

// Execute возвращает нормализованную занятость и статус каждого дня месяца.
//
// Fail-open: при любом сбое источника возвращаются пустые данные — все дни
// и слоты считаются доступными. Недоступность таблицы не должна
// останавливать приём бронирований; гонку за слот разрешает внешняя
// система в момент отправки заявки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация месяца
	if _, err := time.Parse(domain.MonthFormat, req.Month); err != nil {
		uc.logger.Warn("GetMonthAvailability: invalid month %q", req.Month)
		return nil, ErrInvalidMonth
	}

	// 2. Запрашиваем источник
	raw, err := uc.source.GetAvailability(ctx, req.Month)
	if err != nil {
		uc.logger.Error("GetMonthAvailability: source failed for month=%s, degrading to empty: %v", req.Month, err)
		return emptyResponse(req.Month), nil
	}

	// 3. Нормализуем ключи слотов (короткие метки -> каноничные диапазоны)
	days := domain.NormalizeMonthData(raw.Days)
	if days == nil {
		days = domain.MonthData{}
	}

	// 4. Классифицируем каждый день
	dayStatus := make(map[string]domain.DayStatus, len(days))
	for date, slots := range days {
		dayStatus[date] = domain.ClassifyDay(slots)
	}

	uc.logger.Info("GetMonthAvailability: month=%s, days_with_data=%d", req.Month, len(days))
	return &Response{
		Month:     req.Month,
		Days:      days,
		DayStatus: dayStatus,
	}, nil
}

func emptyResponse(month string) *Response {
	return &Response{
		Month:     month,
		Days:      domain.MonthData{},
		DayStatus: map[string]domain.DayStatus{},
		Degraded:  true,
	}
}

// SlotStatusFor возвращает статус конкретного слота на дату
// Отсутствие данных по дате или слоту трактуется как доступность
func (r *Response) SlotStatusFor(date, slot string) domain.SlotStatus {
	daySlots, ok := r.Days[date]
	if !ok {
		return domain.SlotAvailable
	}
	status, ok := daySlots[domain.NormalizeSlotKey(slot)]
	if !ok {
		return domain.SlotAvailable
	}
	return status
}
