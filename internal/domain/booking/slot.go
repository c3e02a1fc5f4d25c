package booking

import "github.com/saltain/randevux/internal/timegrid"

// SlotMinutes is the fixed width of the booking grid.
const SlotMinutes = 30

type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// GenerateSlots walks the working interval in fixed steps and emits every
// slot with its availability flag; unavailable slots stay in the sequence so
// the wizard can render them disabled. The walk stops before EndMin: a slot
// starting exactly at closing time is never emitted.
func GenerateSlots(day WorkingDay, taken map[string]bool) []TimeSlot {
	slots := []TimeSlot{}

	for cur := day.StartMin; cur < day.EndMin; cur += SlotMinutes {
		label := timegrid.MinutesToTime(cur)
		slots = append(slots, TimeSlot{
			Time:      label,
			Available: !day.InBreak(cur) && !taken[label],
		})
	}

	return slots
}
