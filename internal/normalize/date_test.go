package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestISODate(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"Wednesday, February 25th, 2026", "2026-02-25", true},
		{"Thursday, March 5th, 2026", "2026-03-05", true},
		{"March 5, 2026", "2026-03-05", true},
		{"March 5 2026", "2026-03-05", true},
		{"Jan 2, 2027", "2027-01-02", true},
		{"Friday, August 21st, 2026", "2026-08-21", true},
		{"sometime next week", "", false},
		{"", "", false},
		{"the 5th of March", "", false},
	}

	for _, tt := range tests {
		got, ok := ISODate(tt.raw)
		assert.Equal(t, tt.ok, ok, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestISODate_WeekdayMismatchStillParses(t *testing.T) {
	// March 5th, 2026 is a Thursday; a summary claiming Monday is logged but
	// the date is kept as spoken.
	got, ok := ISODate("Monday, March 5th, 2026")
	assert.True(t, ok)
	assert.Equal(t, "2026-03-05", got)
}
