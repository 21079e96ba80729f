package models

import "github.com/google/uuid"

type Venue struct {
	Base

	Name string `gorm:"size:150;not null" json:"name"`

	VenueTypeID *uuid.UUID `gorm:"type:uuid" json:"venue_type_id"`
	VenueType   *VenueType `gorm:"constraint:OnDelete:SET NULL;" json:"venue_type,omitempty"`

	AddressLine1 string `gorm:"size:150" json:"address_line1"`
	AddressLine2 string `gorm:"size:150" json:"address_line2"`
	City         string `gorm:"size:100" json:"city"`
	State        string `gorm:"size:50" json:"state"`
	PostalCode   string `gorm:"size:20" json:"postal_code"`

	Capacity int    `json:"capacity"`
	Phone    string `gorm:"size:30" json:"phone"`
	Notes    string `gorm:"type:text" json:"notes"`

	Contacts []VenueContact `gorm:"constraint:OnDelete:CASCADE;" json:"contacts,omitempty"`
}
