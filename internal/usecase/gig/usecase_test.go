package gig

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/SpinCityEvents/gig-manager/internal/domain/gig"
	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/models"
)

// fakeRepo is an in-memory domain.Repository for use-case tests.
type fakeRepo struct {
	customers map[uuid.UUID]*models.Customer
	venues    map[uuid.UUID]*models.Venue
	gigs      map[uuid.UUID]*models.Gig

	created []models.Gig
	updated []models.Gig
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		customers: map[uuid.UUID]*models.Customer{},
		venues:    map[uuid.UUID]*models.Venue{},
		gigs:      map[uuid.UUID]*models.Gig{},
	}
}

func (r *fakeRepo) GetCustomerByID(_ context.Context, id uuid.UUID) (*models.Customer, error) {
	if c, ok := r.customers[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetVenueByID(_ context.Context, id uuid.UUID) (*models.Venue, error) {
	if v, ok := r.venues[id]; ok {
		return v, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetGigByID(_ context.Context, id uuid.UUID) (*models.Gig, error) {
	if g, ok := r.gigs[id]; ok {
		copied := *g
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) CreateGigs(_ context.Context, gigs []models.Gig) error {
	r.created = append(r.created, gigs...)
	return nil
}

func (r *fakeRepo) UpdateGig(_ context.Context, g *models.Gig) error {
	r.updated = append(r.updated, *g)
	r.gigs[g.ID] = g
	return nil
}

func (r *fakeRepo) DeleteGig(_ context.Context, g *models.Gig) error {
	delete(r.gigs, g.ID)
	return nil
}

func (r *fakeRepo) ListGigsForDay(_ context.Context, start, end time.Time) ([]models.Gig, error) {
	return r.listBetween(start, end), nil
}

func (r *fakeRepo) ListGigsForPeriod(_ context.Context, start, end time.Time) ([]models.Gig, error) {
	return r.listBetween(start, end), nil
}

func (r *fakeRepo) ListGigsForPersonnel(_ context.Context, _ uuid.UUID, start, end time.Time) ([]models.Gig, error) {
	return r.listBetween(start, end), nil
}

func (r *fakeRepo) listBetween(start, end time.Time) []models.Gig {
	var out []models.Gig
	for _, g := range r.gigs {
		if !g.StartTime.Before(start) && g.StartTime.Before(end) {
			out = append(out, *g)
		}
	}
	return out
}

func (r *fakeRepo) addCustomer() uuid.UUID {
	id := uuid.New()
	r.customers[id] = &models.Customer{Base: models.Base{ID: id}, Type: models.CustomerTypeBusiness, BusinessName: "Lucky Star Lounge"}
	return id
}

func (r *fakeRepo) addVenue() uuid.UUID {
	id := uuid.New()
	r.venues[id] = &models.Venue{Base: models.Base{ID: id}, Name: "Lucky Star Lounge"}
	return id
}

func (r *fakeRepo) addGig(status string, start time.Time) *models.Gig {
	g := &models.Gig{
		Base:      models.Base{ID: uuid.New()},
		Name:      "DJ Night",
		Status:    status,
		StartTime: start,
		EndTime:   start.Add(3 * time.Hour),
	}
	r.gigs[g.ID] = g
	return g
}

// ======================================================
// CreateGig
// ======================================================

func TestCreateGigSingle(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateGig(repo)

	start := time.Date(2026, 6, 5, 20, 0, 0, 0, time.UTC)
	in := CreateGigInput{
		Name:       "Wedding Reception",
		CustomerID: repo.addCustomer(),
		VenueID:    repo.addVenue(),
		StartTime:  start,
		EndTime:    start.Add(5 * time.Hour),
	}

	gigs, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, gigs, 1)

	assert.Equal(t, "Wedding Reception", gigs[0].Name)
	assert.Equal(t, string(domain.StatusScheduled), gigs[0].Status)
	assert.Nil(t, gigs[0].RecurrenceGroupID)
	assert.Len(t, repo.created, 1)
}

func TestCreateGigRecurring(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateGig(repo)

	start := time.Date(2026, 6, 5, 20, 0, 0, 0, time.UTC)
	in := CreateGigInput{
		Name:       "Karaoke Friday",
		CustomerID: repo.addCustomer(),
		VenueID:    repo.addVenue(),
		StartTime:  start,
		EndTime:    start.Add(4 * time.Hour),
		Recurrence: &RecurrenceInput{Rule: "weekly", Count: 6},
	}

	gigs, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, gigs, 6)

	for i, g := range gigs {
		assert.Equal(t, start.AddDate(0, 0, 7*i), g.StartTime)
		require.NotNil(t, g.RecurrenceGroupID)
		assert.Equal(t, gigs[0].RecurrenceGroupID, g.RecurrenceGroupID)
	}
	assert.Len(t, repo.created, 6)
}

func TestCreateGigValidation(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateGig(repo)

	customerID := repo.addCustomer()
	venueID := repo.addVenue()
	start := time.Date(2026, 6, 5, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   CreateGigInput
		code string
	}{
		{
			name: "end before start",
			in:   CreateGigInput{CustomerID: customerID, VenueID: venueID, StartTime: start, EndTime: start.Add(-time.Hour)},
			code: "invalid_time_range",
		},
		{
			name: "unknown customer",
			in:   CreateGigInput{CustomerID: uuid.New(), VenueID: venueID, StartTime: start, EndTime: start.Add(time.Hour)},
			code: "customer_not_found",
		},
		{
			name: "unknown venue",
			in:   CreateGigInput{CustomerID: customerID, VenueID: uuid.New(), StartTime: start, EndTime: start.Add(time.Hour)},
			code: "venue_not_found",
		},
		{
			name: "bad recurrence rule",
			in: CreateGigInput{
				CustomerID: customerID, VenueID: venueID,
				StartTime: start, EndTime: start.Add(time.Hour),
				Recurrence: &RecurrenceInput{Rule: "daily", Count: 3},
			},
			code: "invalid_recurrence_rule",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.in)
			assert.True(t, httperr.IsBusiness(err, tt.code), "want %s, got %v", tt.code, err)
		})
	}

	assert.Empty(t, repo.created)
}

// ======================================================
// RescheduleGig
// ======================================================

func TestRescheduleGig(t *testing.T) {
	repo := newFakeRepo()
	uc := NewRescheduleGig(repo)

	g := repo.addGig(string(domain.StatusScheduled), time.Date(2026, 6, 5, 20, 0, 0, 0, time.UTC))

	start := time.Date(2026, 6, 6, 21, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	out, err := uc.Execute(context.Background(), g.ID, start, end)
	require.NoError(t, err)

	assert.Equal(t, start, out.StartTime)
	assert.Equal(t, end, out.EndTime)
	require.Len(t, repo.updated, 1)
	assert.Equal(t, start, repo.updated[0].StartTime)
}

func TestRescheduleGigTerminal(t *testing.T) {
	repo := newFakeRepo()
	uc := NewRescheduleGig(repo)

	g := repo.addGig(string(domain.StatusCancelled), time.Date(2026, 6, 5, 20, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), g.ID, g.StartTime, g.EndTime.Add(time.Hour))
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Empty(t, repo.updated)
}

func TestRescheduleGigNotFound(t *testing.T) {
	uc := NewRescheduleGig(newFakeRepo())

	now := time.Now()
	_, err := uc.Execute(context.Background(), uuid.New(), now, now.Add(time.Hour))
	assert.True(t, httperr.IsBusiness(err, "gig_not_found"))
}

// ======================================================
// Lifecycle use cases
// ======================================================

func TestConfirmGig(t *testing.T) {
	repo := newFakeRepo()
	uc := NewConfirmGig(repo)

	g := repo.addGig(string(domain.StatusScheduled), time.Now())

	out, err := uc.Execute(context.Background(), g.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), out.Status)
}

func TestCancelGig(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCancelGig(repo, "America/Chicago")

	g := repo.addGig(string(domain.StatusConfirmed), time.Now())

	out, err := uc.Execute(context.Background(), g.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), out.Status)
	require.NotNil(t, out.CancelledAt)
}

func TestCompleteGigAlreadyCancelled(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCompleteGig(repo, "America/Chicago")

	g := repo.addGig(string(domain.StatusCancelled), time.Now())

	_, err := uc.Execute(context.Background(), g.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

// ======================================================
// Calendar feeds
// ======================================================

func TestListGigsByDate(t *testing.T) {
	repo := newFakeRepo()
	uc := NewListGigsByDate(repo, "America/Chicago")

	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	repo.addGig(string(domain.StatusScheduled), time.Date(2026, 6, 5, 20, 0, 0, 0, loc))
	repo.addGig(string(domain.StatusScheduled), time.Date(2026, 6, 5, 9, 0, 0, 0, loc))
	repo.addGig(string(domain.StatusScheduled), time.Date(2026, 6, 6, 20, 0, 0, 0, loc))

	gigs, err := uc.Execute(context.Background(), "2026-06-05")
	require.NoError(t, err)
	assert.Len(t, gigs, 2)
}

func TestListGigsByDateBadInput(t *testing.T) {
	uc := NewListGigsByDate(newFakeRepo(), "America/Chicago")

	_, err := uc.Execute(context.Background(), "06/05/2026")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}
