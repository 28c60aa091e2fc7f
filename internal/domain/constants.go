package domain

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// Business limits
const (
	MaxActivities = 3 // a session is always exactly 3 experiences
	MinGuests     = 1
	MaxGuests     = 4
)

// Wizard steps
const (
	StepDateSelect     = 1
	StepTimeSelect     = 2
	StepActivitySelect = 3
	StepGuestInfo      = 4
	StepConfirm        = 5
)

// SessionPriceYen fixed price for a 90-minute session, shown on confirmation
const SessionPriceYen = 40000
