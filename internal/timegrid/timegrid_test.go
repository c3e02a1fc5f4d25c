package timegrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"00:30", 30},
		{"09:00", 540},
		{"12:45", 765},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToMinutes(tt.in), tt.in)
	}
}

func TestMinutesToTimePadding(t *testing.T) {
	assert.Equal(t, "00:00", MinutesToTime(0))
	assert.Equal(t, "09:05", MinutesToTime(545))
	assert.Equal(t, "16:30", MinutesToTime(990))
}

func TestRoundTrip(t *testing.T) {
	for m := 0; m < 24*60; m++ {
		s := MinutesToTime(m)
		assert.Equal(t, m, ToMinutes(s))
	}
}
