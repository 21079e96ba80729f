package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/SpinCityEvents/gig-manager/internal/domain/gig"
	"github.com/SpinCityEvents/gig-manager/internal/models"
)

type GigGormRepository struct {
	db *gorm.DB
}

func NewGigGormRepository(db *gorm.DB) *GigGormRepository {
	return &GigGormRepository{db: db}
}

// --------------------------------------------------
// Referenced entities
// --------------------------------------------------

func (r *GigGormRepository) GetCustomerByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *GigGormRepository) GetVenueByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Venue, error) {

	var venue models.Venue
	if err := r.db.WithContext(ctx).First(&venue, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

// --------------------------------------------------
// Gig
// --------------------------------------------------

func (r *GigGormRepository) GetGigByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Gig, error) {

	var g models.Gig
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Venue").
		Preload("Personnel.Personnel").
		First(&g, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &g, nil
}

// CreateGigs inserts one row at a time inside a transaction so each
// occurrence gets its own change-capture entry.
func (r *GigGormRepository) CreateGigs(
	ctx context.Context,
	gigs []models.Gig,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range gigs {
			if err := tx.Create(&gigs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GigGormRepository) UpdateGig(
	ctx context.Context,
	g *models.Gig,
) error {
	return r.db.WithContext(ctx).Omit("Customer", "Venue", "Personnel").Save(g).Error
}

func (r *GigGormRepository) DeleteGig(
	ctx context.Context,
	g *models.Gig,
) error {
	return r.db.WithContext(ctx).Delete(g).Error
}

// --------------------------------------------------
// Calendar feeds
// --------------------------------------------------

func (r *GigGormRepository) ListGigsForDay(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Gig, error) {

	var gigs []models.Gig
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Venue").
		Preload("Personnel.Personnel").
		Where("start_time >= ? AND start_time < ?", start, end).
		Order("start_time ASC").
		Find(&gigs).Error; err != nil {
		return nil, err
	}

	return gigs, nil
}

func (r *GigGormRepository) ListGigsForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Gig, error) {

	var gigs []models.Gig
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Venue").
		Where("start_time >= ? AND start_time < ?", start, end).
		Order("start_time ASC").
		Find(&gigs).Error; err != nil {
		return nil, err
	}

	return gigs, nil
}

func (r *GigGormRepository) ListGigsForPersonnel(
	ctx context.Context,
	personnelID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Gig, error) {

	var gigs []models.Gig
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Venue").
		Joins("JOIN gig_personnels ON gig_personnels.gig_id = gigs.id").
		Where("gig_personnels.personnel_id = ?", personnelID).
		Where("gigs.start_time >= ? AND gigs.start_time < ?", start, end).
		Order("gigs.start_time ASC").
		Find(&gigs).Error; err != nil {
		return nil, err
	}

	return gigs, nil
}

// Compile-time check
var _ domain.Repository = (*GigGormRepository)(nil)
