package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSlotKey(t *testing.T) {
	assert.Equal(t, "16:00-17:30", NormalizeSlotKey("16:00"))
	assert.Equal(t, "22:00-23:30", NormalizeSlotKey("22:00"))
	assert.Equal(t, "18:00-19:30", NormalizeSlotKey("18:00-19:30"))
	// Неизвестный ключ проходит насквозь
	assert.Equal(t, "07:00", NormalizeSlotKey("07:00"))
}

func TestNormalizeDaySlots(t *testing.T) {
	raw := DaySlots{
		"16:00":       SlotBooked,
		"18:00-19:30": SlotClosed,
	}
	normalized := NormalizeDaySlots(raw)
	assert.Equal(t, SlotBooked, normalized["16:00-17:30"])
	assert.Equal(t, SlotClosed, normalized["18:00-19:30"])
	assert.Len(t, normalized, 2)
}

func TestClassifyDay(t *testing.T) {
	tests := []struct {
		name  string
		slots DaySlots
		want  DayStatus
	}{
		{"no data at all", nil, DayAvailable},
		{"empty map", DaySlots{}, DayAvailable},
		{
			"all slots open",
			DaySlots{"16:00-17:30": SlotAvailable, "20:00-21:30": SlotAvailable},
			DayAvailable,
		},
		{
			"one slot booked",
			DaySlots{"16:00-17:30": SlotBooked},
			DayPartial,
		},
		{
			"mix of booked and closed",
			DaySlots{"16:00-17:30": SlotBooked, "18:00-19:30": SlotClosed, "20:00-21:30": SlotAvailable},
			DayPartial,
		},
		{
			"every slot blocked",
			DaySlots{
				"16:00-17:30": SlotBooked,
				"18:00-19:30": SlotBooked,
				"20:00-21:30": SlotClosed,
				"22:00-23:30": SlotBooked,
			},
			DayFull,
		},
		{
			"unknown extra keys are ignored",
			DaySlots{"07:00-08:30": SlotBooked},
			DayAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDay(tt.slots))
		})
	}
}

func TestIsSlotSelectable(t *testing.T) {
	assert.True(t, IsSlotSelectable(SlotAvailable))
	assert.True(t, IsSlotSelectable(""))
	assert.False(t, IsSlotSelectable(SlotBooked))
	assert.False(t, IsSlotSelectable(SlotClosed))
}
