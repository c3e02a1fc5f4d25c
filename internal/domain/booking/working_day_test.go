package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayIndexMondayBased(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2024-07-01", 0}, // Monday
		{"2024-07-02", 1},
		{"2024-07-03", 2},
		{"2024-07-04", 3},
		{"2024-07-05", 4},
		{"2024-07-06", 5}, // Saturday
		{"2024-07-07", 6}, // Sunday
		{"2024-07-08", 0}, // next Monday
	}

	for _, tt := range tests {
		day, err := time.Parse("2006-01-02", tt.date)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, DayIndex(day), tt.date)
	}
}

func TestDayIndexSundayMondayBoundary(t *testing.T) {
	sunday, _ := time.Parse("2006-01-02", "2024-06-30")
	monday, _ := time.Parse("2006-01-02", "2024-07-01")

	assert.Equal(t, time.Sunday, sunday.Weekday())
	assert.Equal(t, 6, DayIndex(sunday))
	assert.Equal(t, time.Monday, monday.Weekday())
	assert.Equal(t, 0, DayIndex(monday))
}

func TestDayIndexOf(t *testing.T) {
	idx, err := DayIndexOf("2024-07-07")
	assert.NoError(t, err)
	assert.Equal(t, 6, idx)

	_, err = DayIndexOf("07/07/2024")
	assert.Error(t, err)
}

func TestInBreakWithoutBreakConfigured(t *testing.T) {
	day := workingDay("09:00", "17:00", "", "")
	assert.False(t, day.InBreak(600))
}
