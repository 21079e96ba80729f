package models

import (
	"time"

	"github.com/google/uuid"
)

type Gig struct {
	Base

	Name string `gorm:"size:150;not null" json:"name"`

	GigTypeID *uuid.UUID `gorm:"type:uuid" json:"gig_type_id"`
	GigType   *GigType   `gorm:"constraint:OnDelete:SET NULL;" json:"gig_type,omitempty"`

	CustomerID uuid.UUID `gorm:"type:uuid;not null" json:"customer_id"`
	Customer   Customer  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"customer"`

	VenueID uuid.UUID `gorm:"type:uuid;not null" json:"venue_id"`
	Venue   Venue     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"venue"`

	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	// Occurrences expanded from one recurring creation share this tag but
	// are otherwise fully independent rows.
	RecurrenceGroupID *uuid.UUID `gorm:"type:uuid;index" json:"recurrence_group_id"`

	Notes       string     `gorm:"type:text" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	Personnel []GigPersonnel `gorm:"constraint:OnDelete:CASCADE;" json:"personnel,omitempty"`
}

type GigPersonnel struct {
	Base

	GigID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_gig_personnel" json:"gig_id"`
	PersonnelID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_gig_personnel" json:"personnel_id"`
	Personnel   Personnel `gorm:"constraint:OnDelete:CASCADE;" json:"personnel"`

	Role         string  `gorm:"size:50" json:"role"`
	PayoutAmount float64 `json:"payout_amount"`
}

type GigCheckIn struct {
	Base

	GigID       uuid.UUID `gorm:"type:uuid;not null;index" json:"gig_id"`
	PersonnelID uuid.UUID `gorm:"type:uuid;not null;index" json:"personnel_id"`

	CheckInAt  time.Time  `gorm:"not null" json:"check_in_at"`
	CheckOutAt *time.Time `json:"check_out_at"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}
