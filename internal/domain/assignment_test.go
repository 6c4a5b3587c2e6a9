package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatusPair(t *testing.T) {
	tests := []struct {
		shift      ShiftStatus
		assignment AssignmentStatus
		want       bool
	}{
		{ShiftStatusPending, AssignmentStatusPending, true},
		{ShiftStatusPending, AssignmentStatusConfirmed, true},
		{ShiftStatusPending, AssignmentStatusCancelled, true},
		{ShiftStatusConfirmed, AssignmentStatusPending, true},
		{ShiftStatusConfirmed, AssignmentStatusConfirmed, true},
		{ShiftStatusConfirmed, AssignmentStatusCancelled, true},
		{ShiftStatusCancelled, AssignmentStatusCancelled, true},
		{ShiftStatusCancelled, AssignmentStatusPending, false},
		{ShiftStatusCancelled, AssignmentStatusConfirmed, false},
		{ShiftStatusCompleted, AssignmentStatusConfirmed, true},
		{ShiftStatusCompleted, AssignmentStatusCancelled, true},
		{ShiftStatusCompleted, AssignmentStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.shift)+"/"+string(tt.assignment), func(t *testing.T) {
			assert.Equal(t, tt.want, ValidStatusPair(tt.shift, tt.assignment))
		})
	}
}

func TestValidStatusPair_UnknownStatusesRejected(t *testing.T) {
	assert.False(t, ValidStatusPair("bogus", AssignmentStatusPending))
	assert.False(t, ValidStatusPair(ShiftStatusPending, "bogus"))
}
