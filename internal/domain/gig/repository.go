package gig

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/SpinCityEvents/gig-manager/internal/models"
)

type Repository interface {
	// -------- Referenced entities --------
	GetCustomerByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Customer, error)

	GetVenueByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Venue, error)

	// -------- Gig (create / mutate) --------
	GetGigByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Gig, error)

	CreateGigs(
		ctx context.Context,
		gigs []models.Gig,
	) error

	UpdateGig(
		ctx context.Context,
		g *models.Gig,
	) error

	DeleteGig(
		ctx context.Context,
		g *models.Gig,
	) error

	// -------- Calendar feeds --------
	ListGigsForDay(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Gig, error)

	ListGigsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Gig, error)

	ListGigsForPersonnel(
		ctx context.Context,
		personnelID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Gig, error)
}
