package models

import "github.com/google/uuid"

type FileRecord struct {
	Base

	Name        string `gorm:"size:255;not null" json:"name"`
	ContentType string `gorm:"size:100" json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`

	// Object location in the storage backend plus its public URL.
	StorageKey   string  `gorm:"size:512;not null" json:"storage_key"`
	URL          string  `gorm:"size:512;not null" json:"url"`
	ThumbnailURL *string `gorm:"size:512" json:"thumbnail_url"`

	DocumentTypeID *uuid.UUID    `gorm:"type:uuid" json:"document_type_id"`
	DocumentType   *DocumentType `gorm:"constraint:OnDelete:SET NULL;" json:"document_type,omitempty"`

	UploadedByUserID *uuid.UUID `gorm:"type:uuid" json:"uploaded_by_user_id"`

	// Optional attachment targets.
	GigID       *uuid.UUID `gorm:"type:uuid;index" json:"gig_id"`
	VenueID     *uuid.UUID `gorm:"type:uuid;index" json:"venue_id"`
	PersonnelID *uuid.UUID `gorm:"type:uuid;index" json:"personnel_id"`
}
