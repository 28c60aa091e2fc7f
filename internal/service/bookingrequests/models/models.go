package models

import (
	"errors"
	"time"

	"github.com/shidenryu/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе передачи
	ErrInvalidStatus = errors.New("invalid relay status")

	// ErrInvalidDate возвращается при некорректной дате фильтра
	ErrInvalidDate = errors.New("invalid filter date")
)

// Request модели

// ListRequestsRequest запрос на получение архива заявок
type ListRequestsRequest struct {
	StartDate   *string `json:"startDate,omitempty"`   // Начало периода YYYY-MM-DD (опционально)
	EndDate     *string `json:"endDate,omitempty"`     // Конец периода YYYY-MM-DD (опционально)
	RelayStatus *string `json:"relayStatus,omitempty"` // Фильтр по исходу передачи (опционально)
	Limit       int     `json:"limit,omitempty"`       // 0 = без ограничения
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRequestsRequest) ToDomainFilter() (domain.BookingRequestsFilter, error) {
	filter := domain.BookingRequestsFilter{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Limit:     r.Limit,
	}

	for _, d := range []*string{r.StartDate, r.EndDate} {
		if d == nil {
			continue
		}
		if _, err := time.Parse(domain.DateFormat, *d); err != nil {
			return filter, ErrInvalidDate
		}
	}

	if r.RelayStatus != nil {
		status, err := ToDomainRelayStatus(*r.RelayStatus)
		if err != nil {
			return filter, err
		}
		filter.RelayStatus = &status
	}

	return filter, nil
}

// Response модели

// RequestResponse ответ с данными архивной заявки
type RequestResponse struct {
	ID              int64    `json:"id"`
	BookingID       string   `json:"bookingId,omitempty"`
	Date            string   `json:"date"`     // "2026-03-15"
	TimeSlot        string   `json:"timeSlot"` // "16:00-17:30"
	Activities      []string `json:"activities"`
	Nickname        string   `json:"nickname"`
	Email           string   `json:"email"`
	NumberOfGuests  int      `json:"numberOfGuests"`
	GuestSizes      string   `json:"guestSizes"`
	RoomNumber      string   `json:"roomNumber"`
	SpecialRequests string   `json:"specialRequests,omitempty"`
	RelayStatus     string   `json:"relayStatus"`

	CreatedAt time.Time `json:"createdAt"`
}

// RequestListResponse ответ со списком архивных заявок
type RequestListResponse struct {
	Requests []RequestResponse `json:"requests"`
}

// Методы конвертации

// FromDomainRequest конвертирует domain модель в DTO
func FromDomainRequest(r *domain.BookingRequest) *RequestResponse {
	if r == nil {
		return nil
	}

	return &RequestResponse{
		ID:              r.ID,
		BookingID:       r.BookingID,
		Date:            r.Date,
		TimeSlot:        r.TimeSlot,
		Activities:      r.Activities,
		Nickname:        r.Nickname,
		Email:           r.Email,
		NumberOfGuests:  r.NumberOfGuests,
		GuestSizes:      r.GuestSizes,
		RoomNumber:      r.RoomNumber,
		SpecialRequests: r.SpecialRequests,
		RelayStatus:     string(r.RelayStatus),
		CreatedAt:       r.CreatedAt,
	}
}

// FromDomainRequestList конвертирует список domain моделей в DTO
func FromDomainRequestList(requests []*domain.BookingRequest) *RequestListResponse {
	if requests == nil {
		return &RequestListResponse{
			Requests: []RequestResponse{},
		}
	}

	resp := &RequestListResponse{
		Requests: make([]RequestResponse, len(requests)),
	}

	for i, req := range requests {
		if reqResp := FromDomainRequest(req); reqResp != nil {
			resp.Requests[i] = *reqResp
		}
	}

	return resp
}

// ToDomainRelayStatus конвертирует строку в domain.RelayStatus с валидацией
func ToDomainRelayStatus(status string) (domain.RelayStatus, error) {
	s := domain.RelayStatus(status)

	validStatuses := []domain.RelayStatus{
		domain.RelayAccepted,
		domain.RelayConflict,
		domain.RelayFailed,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
