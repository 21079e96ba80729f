package gig

import (
	"time"

	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(g *models.Gig) error {
	if err := CanConfirm(Status(g.Status)); err != nil {
		return err
	}

	g.Status = string(StatusConfirmed)
	return nil
}

func Cancel(g *models.Gig, now time.Time) error {
	if err := CanCancel(Status(g.Status)); err != nil {
		return err
	}

	g.Status = string(StatusCancelled)
	g.CancelledAt = &now
	return nil
}

func Complete(g *models.Gig, now time.Time) error {
	if err := CanComplete(Status(g.Status)); err != nil {
		return err
	}

	g.Status = string(StatusCompleted)
	g.CompletedAt = &now
	return nil
}

// Reschedule applies a calendar drag-and-drop move or resize. The new range
// is persisted exactly as dropped; overlaps with other gigs are allowed.
func Reschedule(g *models.Gig, start, end time.Time) error {
	if err := CanReschedule(Status(g.Status)); err != nil {
		return err
	}
	if err := ValidateRange(start, end); err != nil {
		return err
	}

	g.StartTime = start
	g.EndTime = end
	return nil
}

func ValidateRange(start, end time.Time) error {
	if !end.After(start) {
		return httperr.ErrBusiness("invalid_time_range")
	}
	return nil
}
