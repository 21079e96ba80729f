package gig

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/SpinCityEvents/gig-manager/internal/domain/gig"
	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/models"
	"github.com/SpinCityEvents/gig-manager/internal/timezone"
)

type CompleteGig struct {
	repo domain.Repository
	tz   string
}

func NewCompleteGig(repo domain.Repository, tz string) *CompleteGig {
	return &CompleteGig{repo: repo, tz: tz}
}

func (uc *CompleteGig) Execute(
	ctx context.Context,
	gigID uuid.UUID,
) (*models.Gig, error) {

	g, err := uc.repo.GetGigByID(ctx, gigID)
	if err != nil {
		return nil, httperr.ErrBusiness("gig_not_found")
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Complete(g, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateGig(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}
