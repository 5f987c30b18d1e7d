package inventory

import (
	"context"

	"inventory-tracker/core/reconcile"
	"inventory-tracker/core/sheet"
	"inventory-tracker/feature/inventory/models"
)

// importAdapter reconciles sheet rows into inventory items keyed by name.
type importAdapter struct {
	store  Store
	header *sheet.Header
	cols   ColumnMap
}

var _ reconcile.Adapter[Candidate, models.Item] = (*importAdapter)(nil)

func newImportAdapter(store Store) *importAdapter {
	return &importAdapter{store: store}
}

func (a *importAdapter) Name() string {
	return "inventory"
}

// Decode resolves the column map once per header, then decodes the row.
func (a *importAdapter) Decode(row sheet.Row) (Candidate, bool) {
	if h := row.Header(); h != a.header || a.header == nil {
		a.header = h
		a.cols = ResolveColumns(h)
	}
	return DecodeRow(row, a.cols)
}

func (a *importAdapter) Key(c Candidate) string {
	return c.ItemName
}

func (a *importAdapter) Find(ctx context.Context, key string) (*models.Item, error) {
	return a.store.FindByName(ctx, key)
}

func (a *importAdapter) Create(ctx context.Context, c Candidate) error {
	return a.store.Create(ctx, NewItem(c))
}

func (a *importAdapter) Merge(ctx context.Context, existing *models.Item, c Candidate) error {
	_, err := a.store.Update(ctx, existing.ID, MergeFields(c))
	return err
}
