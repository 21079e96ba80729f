package audit

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/SpinCityEvents/gig-manager/internal/models"
)

type recordedEvents struct {
	events []Event
}

func (r *recordedEvents) Dispatch(ev Event) {
	r.events = append(r.events, ev)
}

func pluginDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *recordedEvents) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	rec := &recordedEvents{}
	plugin := &Plugin{
		events: rec,
		skip:   map[string]bool{"audit_logs": true, "users": true},
	}
	require.NoError(t, gdb.Use(plugin))

	return gdb, mock, rec
}

func TestPluginCapturesUpdate(t *testing.T) {
	gdb, mock, rec := pluginDB(t)

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "venues" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(id.String(), "Old Room"))
	mock.ExpectExec(`UPDATE "venues" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "venues" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(id.String(), "New Room"))

	v := models.Venue{Base: models.Base{ID: id}, Name: "New Room"}
	ctx := WithActor(context.Background(), "user-1")
	require.NoError(t, gdb.WithContext(ctx).Save(&v).Error)

	require.Len(t, rec.events, 1)
	ev := rec.events[0]
	assert.Equal(t, "venues", ev.Table)
	assert.Equal(t, id.String(), ev.RowID)
	assert.Equal(t, ActionUpdate, ev.Action)
	assert.Equal(t, "user-1", ev.Actor)
	assert.Contains(t, string(ev.OldData), "Old Room")
	assert.Contains(t, string(ev.NewData), "New Room")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPluginCapturesDelete(t *testing.T) {
	gdb, mock, rec := pluginDB(t)

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "venues" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(id.String(), "Closing Venue"))
	mock.ExpectExec(`DELETE FROM "venues"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	v := models.Venue{Base: models.Base{ID: id}}
	require.NoError(t, gdb.WithContext(context.Background()).Delete(&v).Error)

	require.Len(t, rec.events, 1)
	ev := rec.events[0]
	assert.Equal(t, "venues", ev.Table)
	assert.Equal(t, ActionDelete, ev.Action)
	assert.Equal(t, SystemActor, ev.Actor)
	assert.Contains(t, string(ev.OldData), "Closing Venue")
	assert.Empty(t, ev.NewData)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Batch writes carry no single row identity, so nothing is logged for them.
// Anything that must be audited has to write row by row.
func TestPluginIgnoresBatchDelete(t *testing.T) {
	gdb, mock, rec := pluginDB(t)

	mock.ExpectExec(`DELETE FROM "invoice_items"`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	err := gdb.Where("invoice_id = ?", uuid.New()).Delete(&models.InvoiceItem{}).Error
	require.NoError(t, err)

	assert.Empty(t, rec.events)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPluginSkipsAuthTable(t *testing.T) {
	gdb, mock, rec := pluginDB(t)

	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	u := models.User{Base: models.Base{ID: uuid.New()}, Name: "Dana", Email: "dana@example.com", Role: models.RoleManager}
	require.NoError(t, gdb.Omit("Personnel").Save(&u).Error)

	assert.Empty(t, rec.events)
	assert.NoError(t, mock.ExpectationsWereMet())
}
