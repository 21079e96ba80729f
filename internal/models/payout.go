package models

import (
	"time"

	"github.com/google/uuid"
)

type PersonnelPayout struct {
	Base

	PersonnelID uuid.UUID `gorm:"type:uuid;not null;index" json:"personnel_id"`
	Personnel   Personnel `gorm:"constraint:OnDelete:CASCADE;" json:"personnel"`

	GigID *uuid.UUID `gorm:"type:uuid" json:"gig_id"`
	Gig   *Gig       `gorm:"constraint:OnDelete:SET NULL;" json:"gig,omitempty"`

	Amount float64 `gorm:"not null" json:"amount"`

	PaymentMethodID *uuid.UUID     `gorm:"type:uuid" json:"payment_method_id"`
	PaymentMethod   *PaymentMethod `gorm:"constraint:OnDelete:SET NULL;" json:"payment_method,omitempty"`

	Status string     `gorm:"size:20;default:'pending'" json:"status"`
	PaidAt *time.Time `json:"paid_at"`
	Notes  string     `gorm:"type:text" json:"notes"`
}
