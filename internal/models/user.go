package models

import "github.com/google/uuid"

type Role string

const (
	RoleOwner     Role = "owner"
	RoleManager   Role = "manager"
	RolePersonnel Role = "personnel"
)

// IsBackOffice reports whether the role sees the full back office.
func (r Role) IsBackOffice() bool {
	return r == RoleOwner || r == RoleManager
}

type User struct {
	Base

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:150;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         Role   `gorm:"size:20;not null;default:'personnel'" json:"role"`

	// Optional 1:1 link to the staff record this login belongs to.
	PersonnelID *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"personnel_id"`
	Personnel   *Personnel `gorm:"constraint:OnDelete:SET NULL;" json:"personnel,omitempty"`
}
