package audit

import (
	"encoding/json"
	"fmt"
	"reflect"

	"gorm.io/gorm"
)

const oldStateKey = "audit:old"

type eventSink interface {
	Dispatch(Event)
}

// Plugin registers the same change-capture callbacks on every base table,
// snapshotting old/new row state into the audit log. The audit log itself
// and the auth table are excluded so capture can never recurse or leak
// password hashes.
type Plugin struct {
	events eventSink
	skip   map[string]bool
}

func NewPlugin(d *Dispatcher) *Plugin {
	return &Plugin{
		events: d,
		skip: map[string]bool{
			"audit_logs": true,
			"users":      true,
		},
	}
}

func (p *Plugin) Name() string { return "audit" }

func (p *Plugin) Initialize(db *gorm.DB) error {
	create := db.Callback().Create()
	update := db.Callback().Update()
	del := db.Callback().Delete()

	if err := create.After("gorm:create").Register("audit:after_create", p.afterCreate); err != nil {
		return err
	}
	if err := update.Before("gorm:update").Register("audit:before_update", p.captureOld); err != nil {
		return err
	}
	if err := update.After("gorm:update").Register("audit:after_update", p.afterUpdate); err != nil {
		return err
	}
	if err := del.Before("gorm:delete").Register("audit:before_delete", p.captureOld); err != nil {
		return err
	}
	if err := del.After("gorm:delete").Register("audit:after_delete", p.afterDelete); err != nil {
		return err
	}
	return nil
}

func (p *Plugin) tracked(tx *gorm.DB) bool {
	return tx.Error == nil &&
		tx.Statement.Schema != nil &&
		!p.skip[tx.Statement.Table]
}

// rowID resolves the primary key of the statement's single-row target.
// Batch writes are not audited row-by-row; handlers load-then-write so the
// struct path is the one that matters.
func (p *Plugin) rowID(tx *gorm.DB) (string, bool) {
	field := tx.Statement.Schema.PrioritizedPrimaryField
	if field == nil {
		return "", false
	}
	rv := tx.Statement.ReflectValue
	if rv.Kind() != reflect.Struct {
		return "", false
	}
	v, zero := field.ValueOf(tx.Statement.Context, rv)
	if zero {
		return "", false
	}
	return fmt.Sprintf("%v", v), true
}

func (p *Plugin) captureOld(tx *gorm.DB) {
	if !p.tracked(tx) {
		return
	}
	id, ok := p.rowID(tx)
	if !ok {
		return
	}

	old := map[string]any{}
	err := tx.Session(&gorm.Session{NewDB: true}).
		Table(tx.Statement.Table).
		Where("id = ?", id).
		Take(&old).Error
	if err == nil {
		tx.InstanceSet(oldStateKey, old)
	}
}

func (p *Plugin) afterCreate(tx *gorm.DB) {
	if !p.tracked(tx) || tx.RowsAffected == 0 {
		return
	}
	id, ok := p.rowID(tx)
	if !ok {
		return
	}

	newData, _ := json.Marshal(tx.Statement.ReflectValue.Interface())

	p.events.Dispatch(Event{
		Table:   tx.Statement.Table,
		RowID:   id,
		Action:  ActionInsert,
		Actor:   ActorFrom(tx.Statement.Context),
		NewData: newData,
	})
}

func (p *Plugin) afterUpdate(tx *gorm.DB) {
	if !p.tracked(tx) || tx.RowsAffected == 0 {
		return
	}
	id, ok := p.rowID(tx)
	if !ok {
		return
	}

	var oldData json.RawMessage
	if v, found := tx.InstanceGet(oldStateKey); found {
		oldData, _ = json.Marshal(v)
	}

	newRow := map[string]any{}
	if err := tx.Session(&gorm.Session{NewDB: true}).
		Table(tx.Statement.Table).
		Where("id = ?", id).
		Take(&newRow).Error; err != nil {
		newRow = nil
	}
	newData, _ := json.Marshal(newRow)

	p.events.Dispatch(Event{
		Table:   tx.Statement.Table,
		RowID:   id,
		Action:  ActionUpdate,
		Actor:   ActorFrom(tx.Statement.Context),
		OldData: oldData,
		NewData: newData,
	})
}

func (p *Plugin) afterDelete(tx *gorm.DB) {
	if !p.tracked(tx) || tx.RowsAffected == 0 {
		return
	}
	id, ok := p.rowID(tx)
	if !ok {
		return
	}

	var oldData json.RawMessage
	if v, found := tx.InstanceGet(oldStateKey); found {
		oldData, _ = json.Marshal(v)
	}

	p.events.Dispatch(Event{
		Table:   tx.Statement.Table,
		RowID:   id,
		Action:  ActionDelete,
		Actor:   ActorFrom(tx.Statement.Context),
		OldData: oldData,
	})
}
