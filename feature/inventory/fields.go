package inventory

import "inventory-tracker/core/sheet"

// Field is a semantic column of an inventory sheet.
type Field int

const (
	FieldItemName Field = iota
	FieldSellingPrice
	FieldCurrentQuantity
	FieldUnitType
	FieldExpiryDate
	FieldStatus

	fieldCount
)

// Fields lists every field in sheet order.
var Fields = [fieldCount]Field{
	FieldItemName, FieldSellingPrice, FieldCurrentQuantity,
	FieldUnitType, FieldExpiryDate, FieldStatus,
}

// Labels are the export headers. Each one normalizes to the field's first alias,
// so an exported file imports back unchanged.
var Labels = [fieldCount]string{
	FieldItemName:        "Item Name",
	FieldSellingPrice:    "Selling Price",
	FieldCurrentQuantity: "Current Quantity",
	FieldUnitType:        "Unit Type",
	FieldExpiryDate:      "Expiry Date",
	FieldStatus:          "Status",
}

// Aliases maps each field to its accepted header names, in priority order.
var Aliases = [fieldCount][]string{
	FieldItemName:        {"item name", "itemname"},
	FieldSellingPrice:    {"selling price", "price"},
	FieldCurrentQuantity: {"current quantity", "current qty", "quantity"},
	FieldUnitType:        {"unit type", "unit"},
	FieldExpiryDate:      {"expiry date", "expiry"},
	FieldStatus:          {"status"},
}

func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return "unknown"
	}
	return Labels[f]
}

// ColumnMap holds the resolved column of every field; -1 means unresolved.
type ColumnMap [fieldCount]int

// ResolveColumns matches every field against the header once.
func ResolveColumns(h *sheet.Header) ColumnMap {
	var m ColumnMap
	for _, f := range Fields {
		m[f] = -1
		if h == nil {
			continue
		}
		if col, ok := h.Resolve(Aliases[f]...); ok {
			m[f] = col
		}
	}
	return m
}

// Resolved reports whether the field has a column.
func (m ColumnMap) Resolved(f Field) bool {
	return m[f] >= 0
}

// Lookup returns the row's cell for the field; present is false when the
// field is unresolved or the cell is empty.
func (m ColumnMap) Lookup(row sheet.Row, f Field) (sheet.Cell, bool) {
	return row.Lookup(m[f])
}
