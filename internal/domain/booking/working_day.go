package booking

import (
	"time"

	"github.com/saltain/randevux/internal/models"
	"github.com/saltain/randevux/internal/timegrid"
)

// DayIndex maps a date to the Monday=0..Sunday=6 index used to key working
// hours. Go's Weekday is Sunday=0, hence the shift. The admin screens list
// days starting with Monday, so read and write paths must agree on this.
func DayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// DayIndexOf parses a YYYY-MM-DD date and returns its working-day index.
func DayIndexOf(date string) (int, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, err
	}
	return DayIndex(t), nil
}

// WorkingDay is a resolved working interval in minute offsets.
type WorkingDay struct {
	StartMin int
	EndMin   int

	BreakStartMin int
	BreakEndMin   int
	HasBreak      bool
}

// ResolveWorkingDay turns a stored entry into a WorkingDay. A nil entry
// (nothing configured) and a holiday both yield ok=false: no slots that day.
func ResolveWorkingDay(wh *models.WorkingHours) (WorkingDay, bool) {
	if wh == nil || wh.IsHoliday {
		return WorkingDay{}, false
	}

	day := WorkingDay{
		StartMin: timegrid.ToMinutes(wh.StartTime),
		EndMin:   timegrid.ToMinutes(wh.EndTime),
	}

	if wh.BreakStart != "" && wh.BreakEnd != "" {
		day.BreakStartMin = timegrid.ToMinutes(wh.BreakStart)
		day.BreakEndMin = timegrid.ToMinutes(wh.BreakEnd)
		day.HasBreak = true
	}

	return day, true
}

// InBreak reports whether a minute offset falls inside the break. The
// interval is half open: a break ending exactly on a slot boundary does not
// block that slot.
func (d WorkingDay) InBreak(minute int) bool {
	return d.HasBreak && minute >= d.BreakStartMin && minute < d.BreakEndMin
}
