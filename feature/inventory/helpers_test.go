package inventory_test

import (
	"bytes"
	"testing"

	"inventory-tracker/core/database"
	"inventory-tracker/core/sheet"
	"inventory-tracker/feature/inventory"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{
		Driver: database.DriverSQLite,
		Name:   ":memory:",
	})
	require.NoError(t, err)
	require.NoError(t, inventory.Migrate(db))
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

// workbook builds an xlsx file from rows; the first row is the header.
func workbook(t *testing.T, rows ...[]any) []byte {
	t.Helper()
	w, err := sheet.NewWriter("Sheet1")
	require.NoError(t, err)
	defer w.Close()

	for _, r := range rows {
		require.NoError(t, w.WriteRow(r...))
	}
	var buf bytes.Buffer
	_, err = w.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}
