package sheetsapi

import "github.com/shidenryu/booking-service/internal/domain"

// AvailabilityResponse ответ action=getAvailability
// Ключи слотов могут приходить как в короткой форме ("16:00"), так и в
// полной ("16:00-17:30") — нормализация выполняется на стороне usecase
type AvailabilityResponse struct {
	Month string           `json:"month"`
	Days  domain.MonthData `json:"days"`
}

// ServicesResponse ответ action=getServices
type ServicesResponse struct {
	Services []domain.Service `json:"services"`
}

// SubmitResponse ответ action=submitBooking
type SubmitResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId,omitempty"`
	Error     string `json:"error,omitempty"`
	Message   string `json:"message,omitempty"`
}

// ErrorResponse модель ошибки от веб-приложения таблицы
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
