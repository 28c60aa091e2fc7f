package domain

import "time"

// RelayStatus tracks what happened to a booking request after it was relayed
// to the external system of record. The external system owns the booking
// lifecycle from there; this archive never transitions further.
type RelayStatus string

const (
	RelayAccepted RelayStatus = "accepted"
	RelayConflict RelayStatus = "conflict"
	RelayFailed   RelayStatus = "failed"
)

// BookingRequest is the locally archived copy of a relayed booking request.
// Denormalized so history survives catalog changes.
type BookingRequest struct {
	ID              int64
	BookingID       string // external booking id, empty unless accepted
	Date            string // YYYY-MM-DD
	TimeSlot        string
	Activities      []string
	Nickname        string
	Email           string
	NumberOfGuests  int
	GuestSizes      string // "Man-L,Woman-M"
	RoomNumber      string
	SpecialRequests string
	RelayStatus     RelayStatus

	CreatedAt time.Time
}

// Accepted returns true if the external system accepted this request
func (b *BookingRequest) Accepted() bool {
	return b.RelayStatus == RelayAccepted
}

// BookingRequestsFilter filters the archive listing
type BookingRequestsFilter struct {
	StartDate   *string // YYYY-MM-DD inclusive
	EndDate     *string // YYYY-MM-DD inclusive
	RelayStatus *RelayStatus
	Limit       int // 0 = no limit
}
