package models

import "github.com/google/uuid"

// Contact is a reusable person record, attached to customers and venues
// through role-tagged junction rows.
type Contact struct {
	Base

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`
	Email     string `gorm:"size:150" json:"email"`
	Phone     string `gorm:"size:30" json:"phone"`
	Notes     string `gorm:"type:text" json:"notes"`
}

type CustomerContact struct {
	Base

	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_customer_contact" json:"customer_id"`
	ContactID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_customer_contact" json:"contact_id"`
	Contact    Contact   `gorm:"constraint:OnDelete:CASCADE;" json:"contact"`

	ContactRoleID *uuid.UUID   `gorm:"type:uuid" json:"contact_role_id"`
	ContactRole   *ContactRole `gorm:"constraint:OnDelete:SET NULL;" json:"contact_role,omitempty"`
}

type VenueContact struct {
	Base

	VenueID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_venue_contact" json:"venue_id"`
	ContactID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_venue_contact" json:"contact_id"`
	Contact   Contact   `gorm:"constraint:OnDelete:CASCADE;" json:"contact"`

	ContactRoleID *uuid.UUID   `gorm:"type:uuid" json:"contact_role_id"`
	ContactRole   *ContactRole `gorm:"constraint:OnDelete:SET NULL;" json:"contact_role,omitempty"`
}
