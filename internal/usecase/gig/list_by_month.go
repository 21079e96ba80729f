package gig

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/SpinCityEvents/gig-manager/internal/domain/gig"
	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/timezone"
)

// CalendarEntry is the projection the scheduling calendar renders.
type CalendarEntry struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	CustomerName      string     `json:"customer_name"`
	VenueName         string     `json:"venue_name"`
	StartTime         time.Time  `json:"start_time"`
	EndTime           time.Time  `json:"end_time"`
	Status            string     `json:"status"`
	RecurrenceGroupID *uuid.UUID `json:"recurrence_group_id,omitempty"`
}

type ListGigsByMonth struct {
	repo domain.Repository
	tz   string
}

func NewListGigsByMonth(repo domain.Repository, tz string) *ListGigsByMonth {
	return &ListGigsByMonth{repo: repo, tz: tz}
}

func (uc *ListGigsByMonth) Execute(
	ctx context.Context,
	year int,
	month int,
) ([]CalendarEntry, error) {

	if month < 1 || month > 12 || year < 2000 || year > 2100 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	start, end := timezone.MonthWindow(year, time.Month(month), uc.tz)

	gigs, err := uc.repo.ListGigsForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	entries := make([]CalendarEntry, 0, len(gigs))
	for _, g := range gigs {
		entries = append(entries, CalendarEntry{
			ID:                g.ID,
			Name:              g.Name,
			CustomerName:      g.Customer.DisplayName(),
			VenueName:         g.Venue.Name,
			StartTime:         g.StartTime,
			EndTime:           g.EndTime,
			Status:            g.Status,
			RecurrenceGroupID: g.RecurrenceGroupID,
		})
	}

	return entries, nil
}
