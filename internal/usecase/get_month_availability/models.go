package get_month_availability

import "github.com/shidenryu/booking-service/internal/domain"

// Request модель запроса занятости за месяц
type Request struct {
	Month string // YYYY-MM
}

// Response модель ответа: нормализованные слоты и агрегированный статус
// каждого дня месяца, по которому есть данные
type Response struct {
	Month     string
	Days      domain.MonthData
	DayStatus map[string]domain.DayStatus
	Degraded  bool // true, если источник был недоступен и данные пустые
}
