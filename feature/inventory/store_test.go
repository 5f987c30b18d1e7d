package inventory_test

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"testing"

	"inventory-tracker/feature/inventory"
	"inventory-tracker/feature/inventory/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, store inventory.Store, items ...models.Item) []models.Item {
	t.Helper()
	for i := range items {
		if items[i].Status == "" {
			items[i].Status = models.StatusNotYet
		}
		require.NoError(t, store.Create(context.Background(), &items[i]))
	}
	return items
}

func TestGormStore_CRUD(t *testing.T) {
	ctx := context.Background()
	store := inventory.NewGormStore(setupTestDB(t))

	items := seed(t, store,
		models.Item{ItemName: "Flour", SellingPrice: decimal.RequireFromString("2.50"), CurrentQuantity: 10, UnitType: "kg"},
		models.Item{ItemName: "Sugar", CurrentQuantity: 4},
	)
	require.NotZero(t, items[0].ID)

	got, err := store.Get(ctx, items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Flour", got.ItemName)
	assert.True(t, decimal.RequireFromString("2.5").Equal(got.SellingPrice))
	assert.Equal(t, "kg", got.UnitType)

	updated, err := store.Update(ctx, items[0].ID, map[string]any{models.ColumnCurrentQuantity: 7})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.CurrentQuantity)
	assert.Equal(t, "kg", updated.UnitType, "untouched columns keep their value")

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Flour", list[0].ItemName)

	require.NoError(t, store.Delete(ctx, items[1].ID))
	assert.ErrorIs(t, store.Delete(ctx, items[1].ID), inventory.ErrNotFound)

	_, err = store.Get(ctx, items[1].ID)
	assert.ErrorIs(t, err, inventory.ErrNotFound)

	_, err = store.Update(ctx, 999, map[string]any{models.ColumnStatus: "new"})
	assert.ErrorIs(t, err, inventory.ErrNotFound)
}

func TestGormStore_FindByName(t *testing.T) {
	ctx := context.Background()
	store := inventory.NewGormStore(setupTestDB(t))

	none, err := store.FindByName(ctx, "Flour")
	require.NoError(t, err)
	assert.Nil(t, none)

	items := seed(t, store,
		models.Item{ItemName: "Flour", CurrentQuantity: 1},
		models.Item{ItemName: "Flour", CurrentQuantity: 2},
	)

	found, err := store.FindByName(ctx, "Flour")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, items[0].ID, found.ID, "duplicates resolve to the lowest id")

	found, err = store.FindByName(ctx, "flour")
	require.NoError(t, err)
	assert.Nil(t, found, "lookup is case-sensitive")
}

func TestGormStore_Bulk(t *testing.T) {
	ctx := context.Background()
	store := inventory.NewGormStore(setupTestDB(t))
	items := seed(t, store,
		models.Item{ItemName: "A"},
		models.Item{ItemName: "B"},
		models.Item{ItemName: "C"},
	)

	n, err := store.UpdateStatus(ctx, []uint{items[0].ID, items[1].ID}, models.StatusChecked)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	a, err := store.Get(ctx, items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusChecked, a.Status)

	n, err = store.DeleteMany(ctx, []uint{items[1].ID, items[2].ID, 404})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	n, err = store.DeleteMany(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestVerifySchema(t *testing.T) {
	missing, err := inventory.VerifySchema(setupTestDB(t))
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestGormStore_Unavailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"connection done", sql.ErrConnDone},
		{"dial failure", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			mock.ExpectQuery("SELECT \\* FROM `inventory_items`").WillReturnError(tt.err)

			store := inventory.NewGormStore(db)
			_, err := store.FindByName(context.Background(), "Flour")
			assert.ErrorIs(t, err, inventory.ErrStoreUnavailable)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGormStore_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `inventory_items`").WillReturnError(errors.New("syntax error"))

	_, err := inventory.NewGormStore(db).List(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, inventory.ErrStoreUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}
