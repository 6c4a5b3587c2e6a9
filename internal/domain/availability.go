package domain

import "time"

// AvailabilityPreference is a one-per-user record, upserted wholesale on
// every save.
type AvailabilityPreference struct {
	UserID              string    `json:"user_id"`
	AvailableDates      []string  `json:"available_dates"` // YYYY-MM-DD
	PreferredSuburbs    []string  `json:"preferred_suburbs"`
	PreferredVenues     []string  `json:"preferred_venues"`
	PreferredShiftTypes []string  `json:"preferred_shift_types"`
	MaxShiftsPerWeek    int       `json:"max_shifts_per_week"`
	Notes               string    `json:"notes"`
	UpdatedAt           time.Time `json:"updated_at"`
}

const dateLayout = "2006-01-02"

// AvailableOn reports whether the worker listed the shift's date. A zero
// MaxShiftsPerWeek means no weekly cap was set.
func (p *AvailabilityPreference) AvailableOn(day time.Time) bool {
	want := day.UTC().Format(dateLayout)
	for _, d := range p.AvailableDates {
		if d == want {
			return true
		}
	}
	return false
}

// CheckAvailability decides whether a worker can take the shift, given their
// preference record (nil when none was ever saved, which imposes no
// constraints) and their active assignments overlapping the shift's week.
// Returns false when the worker has not listed the date, already met their
// weekly cap, or holds an assignment overlapping the shift's time range.
func CheckAvailability(pref *AvailabilityPreference, shift *Shift, weekShifts []*Shift) bool {
	if pref != nil {
		if len(pref.AvailableDates) > 0 && !pref.AvailableOn(shift.StartTime) {
			return false
		}
		if pref.MaxShiftsPerWeek > 0 && len(weekShifts) >= pref.MaxShiftsPerWeek {
			return false
		}
	}
	for _, s := range weekShifts {
		if s.ID == shift.ID {
			return false
		}
		if s.StartTime.Before(shift.EndTime) && shift.StartTime.Before(s.EndTime) {
			return false
		}
	}
	return true
}
