package gig

import (
	"context"
	"time"

	domain "github.com/SpinCityEvents/gig-manager/internal/domain/gig"
	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/models"
	"github.com/SpinCityEvents/gig-manager/internal/timezone"
)

type ListGigsByDate struct {
	repo domain.Repository
	tz   string
}

func NewListGigsByDate(repo domain.Repository, tz string) *ListGigsByDate {
	return &ListGigsByDate{repo: repo, tz: tz}
}

// Execute lists the gigs whose start falls on the given calendar day
// (YYYY-MM-DD) in the company timezone.
func (uc *ListGigsByDate) Execute(
	ctx context.Context,
	date string,
) ([]models.Gig, error) {

	day, err := time.ParseInLocation("2006-01-02", date, timezone.Location(uc.tz))
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	start, end := timezone.DayWindow(day, uc.tz)
	return uc.repo.ListGigsForDay(ctx, start, end)
}
