package create_booking

import (
	submitBooking "github.com/shidenryu/booking-service/internal/usecase/submit_booking"
)

// CreateBookingRequest HTTP request model
// Прямая отправка заявки в обход мастера: все поля сразу
type CreateBookingRequest struct {
	Date            string   `json:"date"`     // "2026-03-15"
	TimeSlot        string   `json:"timeSlot"` // "16:00-17:30"
	Activities      []string `json:"activities"`
	Nickname        string   `json:"nickname"`
	Email           string   `json:"email"`
	NumberOfGuests  int      `json:"numberOfGuests"`
	GuestSizes      string   `json:"guestSizes"` // "Man-L,Woman-M"
	RoomNumber      string   `json:"roomNumber"`
	SpecialRequests string   `json:"specialRequests,omitempty"`
	AgreedToTerms   bool     `json:"agreedToTerms"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId"`
	Message   string `json:"message,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *submitBooking.Request {
	return &submitBooking.Request{
		Date:            r.Date,
		TimeSlot:        r.TimeSlot,
		Activities:      r.Activities,
		Nickname:        r.Nickname,
		Email:           r.Email,
		NumberOfGuests:  r.NumberOfGuests,
		GuestSizes:      r.GuestSizes,
		RoomNumber:      r.RoomNumber,
		SpecialRequests: r.SpecialRequests,
		AgreedToTerms:   r.AgreedToTerms,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *BookingResponse {
	return &BookingResponse{
		Success:   true,
		BookingID: resp.BookingID,
		Message:   resp.Message,
	}
}
