package domain

// SlotStatus is the raw status of a single time slot, as reported by the
// spreadsheet backend
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotClosed    SlotStatus = "closed"
)

// DayStatus is the aggregate status of a calendar day, used for calendar
// rendering and day selectability
type DayStatus string

const (
	DayAvailable DayStatus = "available"
	DayPartial   DayStatus = "partial"
	DayFull      DayStatus = "full"
)

// DaySlots maps a canonical slot range to its status
type DaySlots map[string]SlotStatus

// MonthData maps a date (YYYY-MM-DD) to its slots
type MonthData map[string]DaySlots

// SlotRanges canonical slot keys, in display order
var SlotRanges = []string{
	"16:00-17:30",
	"18:00-19:30",
	"20:00-21:30",
	"22:00-23:30",
}

// shortToRange maps the short labels the spreadsheet backend emits
// (slot start time) to the canonical range keys
var shortToRange = map[string]string{
	"16:00": "16:00-17:30",
	"18:00": "18:00-19:30",
	"20:00": "20:00-21:30",
	"22:00": "22:00-23:30",
}

// IsSlotRange reports whether key is one of the four canonical slot ranges
func IsSlotRange(key string) bool {
	for _, r := range SlotRanges {
		if r == key {
			return true
		}
	}
	return false
}

// NormalizeSlotKey maps a short slot label ("16:00") to its canonical range
// key ("16:00-17:30"). Unrecognized keys pass through unchanged so newer
// backend formats do not break older deployments.
func NormalizeSlotKey(raw string) string {
	if full, ok := shortToRange[raw]; ok {
		return full
	}
	return raw
}

// NormalizeDaySlots rewrites a day's slot map onto canonical range keys.
// Accepts both short and full keys transparently.
func NormalizeDaySlots(raw DaySlots) DaySlots {
	result := make(DaySlots, len(raw))
	for key, status := range raw {
		result[NormalizeSlotKey(key)] = status
	}
	return result
}

// NormalizeMonthData normalizes every day in a month
func NormalizeMonthData(days MonthData) MonthData {
	result := make(MonthData, len(days))
	for date, slots := range days {
		result[date] = NormalizeDaySlots(slots)
	}
	return result
}

// ClassifyDay determines the aggregate status of a calendar day.
// No data at all means available: missing availability must never block a
// booking (fail-open).
func ClassifyDay(daySlots DaySlots) DayStatus {
	if daySlots == nil {
		return DayAvailable
	}

	blocked := 0
	for _, key := range SlotRanges {
		if s := daySlots[key]; s == SlotBooked || s == SlotClosed {
			blocked++
		}
	}

	switch {
	case blocked == 0:
		return DayAvailable
	case blocked >= len(SlotRanges):
		return DayFull
	default:
		return DayPartial
	}
}

// IsSlotSelectable reports whether a slot with the given status may be chosen.
// Only an explicit booked/closed blocks selection; an absent status is
// selectable (fail-open).
func IsSlotSelectable(status SlotStatus) bool {
	return status != SlotBooked && status != SlotClosed
}
