package gig

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/SpinCityEvents/gig-manager/internal/domain/gig"
	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/models"
)

type ConfirmGig struct {
	repo domain.Repository
}

func NewConfirmGig(repo domain.Repository) *ConfirmGig {
	return &ConfirmGig{repo: repo}
}

func (uc *ConfirmGig) Execute(
	ctx context.Context,
	gigID uuid.UUID,
) (*models.Gig, error) {

	g, err := uc.repo.GetGigByID(ctx, gigID)
	if err != nil {
		return nil, httperr.ErrBusiness("gig_not_found")
	}

	if err := domain.Confirm(g); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateGig(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}
