package gig

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/SpinCityEvents/gig-manager/internal/domain/gig"
	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/models"
)

// RescheduleGig backs the calendar's drag-and-drop move/resize: the new
// visual time range comes in, the gig's timestamps are replaced with it
// exactly as dropped.
type RescheduleGig struct {
	repo domain.Repository
}

func NewRescheduleGig(repo domain.Repository) *RescheduleGig {
	return &RescheduleGig{repo: repo}
}

func (uc *RescheduleGig) Execute(
	ctx context.Context,
	gigID uuid.UUID,
	start time.Time,
	end time.Time,
) (*models.Gig, error) {

	g, err := uc.repo.GetGigByID(ctx, gigID)
	if err != nil {
		return nil, httperr.ErrBusiness("gig_not_found")
	}

	if err := domain.Reschedule(g, start, end); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateGig(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}
