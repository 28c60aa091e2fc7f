package apply_flow_event

import (
	"github.com/shidenryu/booking-service/internal/domain"
	"github.com/shidenryu/booking-service/internal/service/wizard"
)

// Типы событий мастера
const (
	EventSelectDate     = "select_date"
	EventSelectTime     = "select_time"
	EventToggleActivity = "toggle_activity"
	EventNext           = "next"
	EventBack           = "back"
	EventEditStep       = "edit_step"
	EventSetGuestInfo   = "set_guest_info"
	EventSetGuestType   = "set_guest_type"
	EventSetGuestSize   = "set_guest_size"
	EventToggleTerms    = "toggle_terms"
)

// FlowEventRequest HTTP request model события мастера
// Заполняются только поля, относящиеся к типу события
type FlowEventRequest struct {
	Type string `json:"type"`

	Date       string `json:"date,omitempty"`       // select_date
	TimeSlot   string `json:"timeSlot,omitempty"`   // select_time
	ActivityID string `json:"activityId,omitempty"` // toggle_activity
	Step       int    `json:"step,omitempty"`       // edit_step

	GuestInfo  *GuestInfoPayload `json:"guestInfo,omitempty"`  // set_guest_info
	GuestIndex *int              `json:"guestIndex,omitempty"` // set_guest_type, set_guest_size
	GuestType  string            `json:"guestType,omitempty"`  // set_guest_type
	Size       string            `json:"size,omitempty"`       // set_guest_size
}

// GuestInfoPayload частичное обновление полей шага Guest Info
// Отсутствующее поле не меняет текущее значение
type GuestInfoPayload struct {
	Nickname        *string `json:"nickname,omitempty"`
	Email           *string `json:"email,omitempty"`
	NumberOfGuests  *int    `json:"numberOfGuests,omitempty"`
	RoomNumber      *string `json:"roomNumber,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// ToGuestInfoInput конвертирует payload в модель мастера
func (p *GuestInfoPayload) ToGuestInfoInput() wizard.GuestInfoInput {
	return wizard.GuestInfoInput{
		Nickname:        p.Nickname,
		Email:           p.Email,
		NumberOfGuests:  p.NumberOfGuests,
		RoomNumber:      p.RoomNumber,
		SpecialRequests: p.SpecialRequests,
	}
}

// FlowResponse HTTP response model состояния мастера после события
type FlowResponse struct {
	SessionKey  string            `json:"sessionKey"`
	Draft       *domain.Draft     `json:"draft"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}
