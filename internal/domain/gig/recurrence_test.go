package gig

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/models"
)

func recurrenceTemplate() models.Gig {
	start := time.Date(2026, 1, 31, 20, 0, 0, 0, time.UTC)
	return models.Gig{
		Name:       "Karaoke Night",
		CustomerID: uuid.New(),
		VenueID:    uuid.New(),
		StartTime:  start,
		EndTime:    start.Add(4 * time.Hour),
		Status:     string(StatusScheduled),
	}
}

func TestExpandRecurrenceWeekly(t *testing.T) {
	tmpl := recurrenceTemplate()

	gigs, err := ExpandRecurrence(tmpl, RecurrenceWeekly, 4)
	require.NoError(t, err)
	require.Len(t, gigs, 4)

	// first occurrence is the template itself
	assert.Equal(t, tmpl.StartTime, gigs[0].StartTime)

	for i, g := range gigs {
		assert.Equal(t, tmpl.StartTime.AddDate(0, 0, 7*i), g.StartTime)
		assert.Equal(t, tmpl.EndTime.AddDate(0, 0, 7*i), g.EndTime)
		assert.Equal(t, 4*time.Hour, g.EndTime.Sub(g.StartTime))
	}
}

func TestExpandRecurrenceMonthly(t *testing.T) {
	tmpl := recurrenceTemplate()

	gigs, err := ExpandRecurrence(tmpl, RecurrenceMonthly, 3)
	require.NoError(t, err)
	require.Len(t, gigs, 3)

	for i, g := range gigs {
		assert.Equal(t, tmpl.StartTime.AddDate(0, i, 0), g.StartTime)
	}
}

func TestExpandRecurrenceSharesGroupID(t *testing.T) {
	gigs, err := ExpandRecurrence(recurrenceTemplate(), RecurrenceWeekly, 5)
	require.NoError(t, err)

	require.NotNil(t, gigs[0].RecurrenceGroupID)
	group := *gigs[0].RecurrenceGroupID
	assert.NotEqual(t, uuid.Nil, group)

	for _, g := range gigs {
		require.NotNil(t, g.RecurrenceGroupID)
		assert.Equal(t, group, *g.RecurrenceGroupID)
		assert.Equal(t, uuid.Nil, g.ID)
	}
}

func TestExpandRecurrenceBounds(t *testing.T) {
	tmpl := recurrenceTemplate()

	_, err := ExpandRecurrence(tmpl, RecurrenceWeekly, 0)
	assert.True(t, httperr.IsBusiness(err, "invalid_occurrence_count"))

	_, err = ExpandRecurrence(tmpl, RecurrenceWeekly, MaxOccurrences+1)
	assert.True(t, httperr.IsBusiness(err, "invalid_occurrence_count"))

	gigs, err := ExpandRecurrence(tmpl, RecurrenceMonthly, MaxOccurrences)
	require.NoError(t, err)
	assert.Len(t, gigs, MaxOccurrences)
}

func TestExpandRecurrenceUnknownRule(t *testing.T) {
	_, err := ExpandRecurrence(recurrenceTemplate(), RecurrenceRule("daily"), 3)
	assert.True(t, httperr.IsBusiness(err, "invalid_recurrence_rule"))
}
