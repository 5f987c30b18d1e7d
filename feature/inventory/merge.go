package inventory

import (
	"inventory-tracker/feature/inventory/models"
)

// NewItem builds the record created for a candidate with no existing match.
func NewItem(c Candidate) *models.Item {
	item := &models.Item{
		ItemName:        c.ItemName,
		SellingPrice:    c.SellingPrice.V,
		CurrentQuantity: c.CurrentQuantity.V,
		Status:          models.StatusNotYet,
	}
	if unit, ok := c.UnitType.Get(); ok {
		item.UnitType = unit
	}
	if expiry, ok := c.ExpiryDate.Get(); ok {
		item.ExpiryDate = &expiry
	}
	if status, ok := c.Status.Get(); ok {
		item.Status = status
	}
	return item
}

// MergeFields returns the columns to write when a candidate matches an
// existing item:
//   - the selling price is always overwritten, zero included
//   - a zero quantity keeps the stock on hand
//   - unit type, expiry and status are written only when the row supplied them
func MergeFields(c Candidate) map[string]any {
	fields := map[string]any{
		models.ColumnSellingPrice: c.SellingPrice.V,
	}
	if c.CurrentQuantity.V != 0 {
		fields[models.ColumnCurrentQuantity] = c.CurrentQuantity.V
	}
	if unit, ok := c.UnitType.Get(); ok {
		fields[models.ColumnUnitType] = unit
	}
	if expiry, ok := c.ExpiryDate.Get(); ok {
		fields[models.ColumnExpiryDate] = expiry
	}
	if status, ok := c.Status.Get(); ok {
		fields[models.ColumnStatus] = status
	}
	return fields
}
