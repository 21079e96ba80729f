package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gdb, mock
}

func dashboardContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	return c, w
}

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func sumRows(v float64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"coalesce"}).AddRow(v)
}

func TestDashboardGet(t *testing.T) {
	gdb, mock := mockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "customers"`).WillReturnRows(countRows(4))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "venues"`).WillReturnRows(countRows(2))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "personnels"`).WillReturnRows(countRows(5))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "gigs"`).WillReturnRows(countRows(3))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "gigs"`).WillReturnRows(countRows(6))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "invoices"`).WillReturnRows(countRows(2))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(total\), 0\) FROM "invoices"`).WillReturnRows(sumRows(750.50))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(total\), 0\) FROM "invoices"`).WillReturnRows(sumRows(1200))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "personnel_payouts"`).WillReturnRows(countRows(3))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM "personnel_payouts"`).WillReturnRows(sumRows(450.25))

	c, w := dashboardContext(t)
	NewDashboardHandler(gdb, nil, "America/Chicago").Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"customers":4`)
	assert.Contains(t, w.Body.String(), `"outstanding_invoice_total":750.5`)
	assert.Contains(t, w.Body.String(), `"pending_payouts":3`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failing aggregation must surface as a 500, not as zeroed stats. Each
// chained query clones the gorm handle, so the error has to be read off the
// chain itself.
func TestDashboardGetQueryError(t *testing.T) {
	gdb, mock := mockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "customers"`).
		WillReturnError(errors.New("connection refused"))

	c, w := dashboardContext(t)
	NewDashboardHandler(gdb, nil, "America/Chicago").Get(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed_to_load_dashboard")
	assert.NoError(t, mock.ExpectationsWereMet())
}
