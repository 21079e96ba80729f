package gig

import (
	"time"

	"github.com/google/uuid"

	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/models"
)

type RecurrenceRule string

const (
	RecurrenceWeekly  RecurrenceRule = "weekly"
	RecurrenceMonthly RecurrenceRule = "monthly"

	// MaxOccurrences bounds a single expansion.
	MaxOccurrences = 52
)

// ExpandRecurrence produces count independent copies of the template on a
// weekly or monthly cadence, all sharing one RecurrenceGroupID. The template
// itself is the first occurrence. Editing one copy never touches siblings.
func ExpandRecurrence(template models.Gig, rule RecurrenceRule, count int) ([]models.Gig, error) {
	if count < 1 || count > MaxOccurrences {
		return nil, httperr.ErrBusiness("invalid_occurrence_count")
	}

	var step func(t time.Time, i int) time.Time
	switch rule {
	case RecurrenceWeekly:
		step = func(t time.Time, i int) time.Time { return t.AddDate(0, 0, 7*i) }
	case RecurrenceMonthly:
		step = func(t time.Time, i int) time.Time { return t.AddDate(0, i, 0) }
	default:
		return nil, httperr.ErrBusiness("invalid_recurrence_rule")
	}

	groupID := uuid.New()
	gigs := make([]models.Gig, count)
	for i := 0; i < count; i++ {
		g := template
		g.ID = uuid.Nil
		g.StartTime = step(template.StartTime, i)
		g.EndTime = step(template.EndTime, i)
		g.RecurrenceGroupID = &groupID
		gigs[i] = g
	}

	return gigs, nil
}
