package domain

import "strings"

// GuestType classifies a guest for costume sizing
type GuestType string

const (
	GuestMan   GuestType = "Man"
	GuestWoman GuestType = "Woman"
	GuestBoy   GuestType = "Boy"
	GuestGirl  GuestType = "Girl"
)

// IsKid returns true for child guest types
func (t GuestType) IsKid() bool {
	return t == GuestBoy || t == GuestGirl
}

// IsValid reports whether the type is one of the four known values
func (t GuestType) IsValid() bool {
	switch t {
	case GuestMan, GuestWoman, GuestBoy, GuestGirl:
		return true
	}
	return false
}

// Costume size vocabularies. Adults and kids have disjoint size sets.
var (
	AdultSizes = []string{"S", "M", "L", "XL"}
	KidsSizes  = []string{"Kids-S", "Kids-M", "Kids-L"}
)

const (
	DefaultAdultSize = "M"
	DefaultKidsSize  = "Kids-M"
)

// SizesFor returns the size vocabulary for a guest type
func SizesFor(t GuestType) []string {
	if t.IsKid() {
		return KidsSizes
	}
	return AdultSizes
}

// DefaultSizeFor returns the default size in the type's vocabulary
func DefaultSizeFor(t GuestType) string {
	if t.IsKid() {
		return DefaultKidsSize
	}
	return DefaultAdultSize
}

// IsValidSizeFor reports whether size belongs to the type's vocabulary
func IsValidSizeFor(t GuestType, size string) bool {
	for _, s := range SizesFor(t) {
		if s == size {
			return true
		}
	}
	return false
}

// GuestEntry is one guest's costume assignment
type GuestEntry struct {
	Type GuestType `json:"type"`
	Size string    `json:"size"`
}

// Draft is the single in-progress booking's mutable state.
// IsSubmitting and LastError are transient UI state and are never persisted.
type Draft struct {
	CurrentStep     int          `json:"currentStep"`
	Date            string       `json:"date"` // YYYY-MM-DD, empty = unset
	TimeSlot        string       `json:"timeSlot"`
	Activities      []string     `json:"activities"`
	Nickname        string       `json:"nickname"`
	Email           string       `json:"email"`
	NumberOfGuests  int          `json:"numberOfGuests"` // 0 = unset
	RoomNumber      string       `json:"roomNumber"`
	SpecialRequests string       `json:"specialRequests"`
	Guests          []GuestEntry `json:"guests"`
	AgreedToTerms   bool         `json:"agreedToTerms"`

	IsSubmitting bool   `json:"-"`
	LastError    string `json:"-"`
}

// NewDraft returns a draft with all-empty defaults on the first step
func NewDraft() *Draft {
	return &Draft{
		CurrentStep: StepDateSelect,
		Activities:  []string{},
		Guests:      []GuestEntry{},
	}
}

// HasActivity reports whether the activity id is already selected
func (d *Draft) HasActivity(id string) bool {
	for _, a := range d.Activities {
		if a == id {
			return true
		}
	}
	return false
}

// ActivitiesComplete reports whether exactly the required number of
// experiences is selected
func (d *Draft) ActivitiesComplete() bool {
	return len(d.Activities) == MaxActivities
}

// GuestSizesString serializes the guest entries into the spreadsheet format,
// e.g. "Man-L,Woman-M"
func (d *Draft) GuestSizesString() string {
	parts := make([]string, 0, len(d.Guests))
	for _, g := range d.Guests {
		parts = append(parts, string(g.Type)+"-"+g.Size)
	}
	return strings.Join(parts, ",")
}

// Summary is the immutable confirmation view handed over after a successful
// submission. It is not a draft: it cannot be navigated or edited.
type Summary struct {
	BookingID      string   `json:"bookingId"`
	Date           string   `json:"date"`
	TimeSlot       string   `json:"timeSlot"`
	Activities     []string `json:"activities"`
	Nickname       string   `json:"nickname"`
	Email          string   `json:"email"`
	NumberOfGuests int      `json:"numberOfGuests"`
}
