package gig

import "github.com/SpinCityEvents/gig-manager/internal/httperr"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusScheduled
}

func IsValid(s Status) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// active gigs may still change; completed and cancelled are terminal.
func isActive(s Status) bool {
	return s == StatusScheduled || s == StatusConfirmed
}

func CanConfirm(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if !isActive(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if !isActive(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanReschedule rejects drag-and-drop moves of terminal gigs.
func CanReschedule(current Status) error {
	if !isActive(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
