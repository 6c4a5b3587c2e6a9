package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func shiftAt(id string, start time.Time, hours int) *Shift {
	return &Shift{
		ID:        id,
		StartTime: start,
		EndTime:   start.Add(time.Duration(hours) * time.Hour),
	}
}

func TestCheckAvailability_NoPreferencesNoConflicts(t *testing.T) {
	shift := shiftAt("s1", time.Date(2026, 9, 4, 18, 0, 0, 0, time.UTC), 6)

	assert.True(t, CheckAvailability(nil, shift, nil))
}

func TestCheckAvailability_DateNotListed(t *testing.T) {
	shift := shiftAt("s1", time.Date(2026, 9, 4, 18, 0, 0, 0, time.UTC), 6)
	pref := &AvailabilityPreference{AvailableDates: []string{"2026-09-05", "2026-09-06"}}

	assert.False(t, CheckAvailability(pref, shift, nil))
}

func TestCheckAvailability_DateListed(t *testing.T) {
	shift := shiftAt("s1", time.Date(2026, 9, 4, 18, 0, 0, 0, time.UTC), 6)
	pref := &AvailabilityPreference{AvailableDates: []string{"2026-09-04"}}

	assert.True(t, CheckAvailability(pref, shift, nil))
}

func TestCheckAvailability_WeeklyCapReached(t *testing.T) {
	shift := shiftAt("s1", time.Date(2026, 9, 4, 18, 0, 0, 0, time.UTC), 6)
	pref := &AvailabilityPreference{MaxShiftsPerWeek: 2}
	week := []*Shift{
		shiftAt("s2", time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC), 6),
		shiftAt("s3", time.Date(2026, 9, 2, 18, 0, 0, 0, time.UTC), 6),
	}

	assert.False(t, CheckAvailability(pref, shift, week))
}

func TestCheckAvailability_OverlappingAssignment(t *testing.T) {
	shift := shiftAt("s1", time.Date(2026, 9, 4, 18, 0, 0, 0, time.UTC), 6)
	week := []*Shift{
		shiftAt("s2", time.Date(2026, 9, 4, 20, 0, 0, 0, time.UTC), 4),
	}

	assert.False(t, CheckAvailability(nil, shift, week))
}

func TestCheckAvailability_AdjacentShiftsDoNotOverlap(t *testing.T) {
	shift := shiftAt("s1", time.Date(2026, 9, 4, 18, 0, 0, 0, time.UTC), 4)
	week := []*Shift{
		// ends exactly when the new shift starts
		shiftAt("s2", time.Date(2026, 9, 4, 14, 0, 0, 0, time.UTC), 4),
	}

	assert.True(t, CheckAvailability(nil, shift, week))
}

func TestCheckAvailability_AlreadyOnThisShift(t *testing.T) {
	shift := shiftAt("s1", time.Date(2026, 9, 4, 18, 0, 0, 0, time.UTC), 6)
	week := []*Shift{shiftAt("s1", shift.StartTime, 6)}

	assert.False(t, CheckAvailability(nil, shift, week))
}
