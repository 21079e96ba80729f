package gig

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/SpinCityEvents/gig-manager/internal/domain/gig"
	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RecurrenceInput struct {
	Rule  string
	Count int
}

type CreateGigInput struct {
	Name      string
	GigTypeID *uuid.UUID

	CustomerID uuid.UUID
	VenueID    uuid.UUID

	StartTime time.Time
	EndTime   time.Time

	Notes string

	// Optional: expand into N independent occurrences.
	Recurrence *RecurrenceInput
}

// ======================================================
// USE CASE
// ======================================================

type CreateGig struct {
	repo domain.Repository
}

func NewCreateGig(repo domain.Repository) *CreateGig {
	return &CreateGig{repo: repo}
}

func (uc *CreateGig) Execute(
	ctx context.Context,
	in CreateGigInput,
) ([]models.Gig, error) {

	if err := domain.ValidateRange(in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetCustomerByID(ctx, in.CustomerID); err != nil {
		return nil, httperr.ErrBusiness("customer_not_found")
	}

	if _, err := uc.repo.GetVenueByID(ctx, in.VenueID); err != nil {
		return nil, httperr.ErrBusiness("venue_not_found")
	}

	template := models.Gig{
		Name:       in.Name,
		GigTypeID:  in.GigTypeID,
		CustomerID: in.CustomerID,
		VenueID:    in.VenueID,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		Status:     string(domain.InitialStatus()),
		Notes:      in.Notes,
	}

	gigs := []models.Gig{template}
	if in.Recurrence != nil {
		expanded, err := domain.ExpandRecurrence(
			template,
			domain.RecurrenceRule(in.Recurrence.Rule),
			in.Recurrence.Count,
		)
		if err != nil {
			return nil, err
		}
		gigs = expanded
	}

	if err := uc.repo.CreateGigs(ctx, gigs); err != nil {
		return nil, err
	}

	return gigs, nil
}
