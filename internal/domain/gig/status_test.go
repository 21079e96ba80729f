package gig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/models"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(StatusScheduled))
	assert.True(t, IsValid(StatusConfirmed))
	assert.True(t, IsValid(StatusCompleted))
	assert.True(t, IsValid(StatusCancelled))
	assert.False(t, IsValid(Status("pending")))
	assert.False(t, IsValid(Status("")))
}

func TestTransitions(t *testing.T) {
	tests := []struct {
		name    string
		check   func(Status) error
		from    Status
		allowed bool
	}{
		{"confirm from scheduled", CanConfirm, StatusScheduled, true},
		{"confirm from confirmed", CanConfirm, StatusConfirmed, false},
		{"confirm from completed", CanConfirm, StatusCompleted, false},
		{"confirm from cancelled", CanConfirm, StatusCancelled, false},

		{"cancel from scheduled", CanCancel, StatusScheduled, true},
		{"cancel from confirmed", CanCancel, StatusConfirmed, true},
		{"cancel from completed", CanCancel, StatusCompleted, false},
		{"cancel from cancelled", CanCancel, StatusCancelled, false},

		{"complete from scheduled", CanComplete, StatusScheduled, true},
		{"complete from confirmed", CanComplete, StatusConfirmed, true},
		{"complete from completed", CanComplete, StatusCompleted, false},
		{"complete from cancelled", CanComplete, StatusCancelled, false},

		{"reschedule from scheduled", CanReschedule, StatusScheduled, true},
		{"reschedule from confirmed", CanReschedule, StatusConfirmed, true},
		{"reschedule from completed", CanReschedule, StatusCompleted, false},
		{"reschedule from cancelled", CanReschedule, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check(tt.from)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.True(t, httperr.IsBusiness(err, "invalid_state"))
			}
		})
	}
}

func TestCancelSetsTimestamp(t *testing.T) {
	g := &models.Gig{Status: string(StatusConfirmed)}
	now := time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC)

	require.NoError(t, Cancel(g, now))

	assert.Equal(t, string(StatusCancelled), g.Status)
	require.NotNil(t, g.CancelledAt)
	assert.Equal(t, now, *g.CancelledAt)
}

func TestCompleteSetsTimestamp(t *testing.T) {
	g := &models.Gig{Status: string(StatusScheduled)}
	now := time.Date(2026, 3, 15, 2, 0, 0, 0, time.UTC)

	require.NoError(t, Complete(g, now))

	assert.Equal(t, string(StatusCompleted), g.Status)
	require.NotNil(t, g.CompletedAt)
	assert.Equal(t, now, *g.CompletedAt)
}

func TestRescheduleRejectsTerminal(t *testing.T) {
	g := &models.Gig{Status: string(StatusCompleted)}
	start := time.Now()

	err := Reschedule(g, start, start.Add(2*time.Hour))
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestRescheduleReplacesRange(t *testing.T) {
	old := time.Date(2026, 5, 1, 19, 0, 0, 0, time.UTC)
	g := &models.Gig{
		Status:    string(StatusScheduled),
		StartTime: old,
		EndTime:   old.Add(3 * time.Hour),
	}

	start := time.Date(2026, 5, 2, 20, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)
	require.NoError(t, Reschedule(g, start, end))

	assert.Equal(t, start, g.StartTime)
	assert.Equal(t, end, g.EndTime)
}

func TestValidateRange(t *testing.T) {
	start := time.Date(2026, 5, 1, 19, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateRange(start, start.Add(time.Hour)))
	assert.True(t, httperr.IsBusiness(ValidateRange(start, start), "invalid_time_range"))
	assert.True(t, httperr.IsBusiness(ValidateRange(start, start.Add(-time.Hour)), "invalid_time_range"))
}
