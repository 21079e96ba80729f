package models

import (
	"time"

	"github.com/google/uuid"
)

type Personnel struct {
	Base

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Email     string `gorm:"size:150" json:"email"`
	Phone     string `gorm:"size:30" json:"phone"`

	PersonnelTypeID *uuid.UUID     `gorm:"type:uuid" json:"personnel_type_id"`
	PersonnelType   *PersonnelType `gorm:"constraint:OnDelete:SET NULL;" json:"personnel_type,omitempty"`

	// Sensitive fields, exposed only on owner/manager routes.
	SSN         string     `gorm:"size:11" json:"ssn,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`

	AddressLine1 string `gorm:"size:150" json:"address_line1"`
	AddressLine2 string `gorm:"size:150" json:"address_line2"`
	City         string `gorm:"size:100" json:"city"`
	State        string `gorm:"size:50" json:"state"`
	PostalCode   string `gorm:"size:20" json:"postal_code"`

	HourlyRate float64 `json:"hourly_rate"`
	Active     bool    `gorm:"default:true" json:"active"`
	Notes      string  `gorm:"type:text" json:"notes"`
}
