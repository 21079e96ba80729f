package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/SpinCityEvents/gig-manager/internal/models"
)

const (
	ActionInsert = "insert"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

type Event struct {
	Table   string
	RowID   string
	Action  string
	Actor   string
	OldData json.RawMessage
	NewData json.RawMessage
}

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ev Event) error {
	row := models.AuditLog{
		TableName: ev.Table,
		RowID:     ev.RowID,
		Action:    ev.Action,
		Actor:     ev.Actor,
		OldData:   ev.OldData,
		NewData:   ev.NewData,
	}

	return l.db.Create(&row).Error
}
