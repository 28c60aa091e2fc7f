package get_availability

import (
	"github.com/shidenryu/booking-service/internal/domain"
	getMonthAvailability "github.com/shidenryu/booking-service/internal/usecase/get_month_availability"
)

// AvailabilityResponse HTTP response model
// Слоты отдаются в каноничной форме диапазонов ("16:00-17:30")
type AvailabilityResponse struct {
	Month     string               `json:"month"`
	Days      map[string]DayDetail `json:"days"`
	Degraded  bool                 `json:"degraded,omitempty"`
	SlotOrder []string             `json:"slotOrder"`
}

// DayDetail статус дня и его слотов
type DayDetail struct {
	Status string            `json:"status"`
	Slots  map[string]string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMonthAvailability.Response) *AvailabilityResponse {
	days := make(map[string]DayDetail, len(resp.Days))
	for date, daySlots := range resp.Days {
		slots := make(map[string]string, len(daySlots))
		for slot, status := range daySlots {
			slots[slot] = string(status)
		}
		days[date] = DayDetail{
			Status: string(resp.DayStatus[date]),
			Slots:  slots,
		}
	}

	return &AvailabilityResponse{
		Month:     resp.Month,
		Days:      days,
		Degraded:  resp.Degraded,
		SlotOrder: domain.SlotRanges,
	}
}
