package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLog is append-only. Business tables never reference it.
type AuditLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	TableName string `gorm:"size:64;not null;index" json:"table_name"`
	RowID     string `gorm:"size:36;index" json:"row_id"`
	Action    string `gorm:"size:10;not null;index" json:"action"`

	// User UUID string, or "system" when no session actor is set.
	Actor string `gorm:"size:64;not null" json:"actor"`

	OldData []byte `gorm:"type:jsonb" json:"old_data"`
	NewData []byte `gorm:"type:jsonb" json:"new_data"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
