package inventory

import (
	"math"
	"strings"
	"time"

	"inventory-tracker/core/sheet"
	"inventory-tracker/core/utils"
	"inventory-tracker/feature/inventory/models"

	"github.com/shopspring/decimal"
)

// State tells whether an import row supplied a field.
type State int

const (
	// Absent means the row had no value for the field.
	Absent State = iota
	// Provided means the row had a usable value.
	Provided
	// Invalid means the row had a value that could not be interpreted.
	Invalid
)

func (s State) String() string {
	switch s {
	case Provided:
		return "provided"
	case Invalid:
		return "invalid"
	default:
		return "absent"
	}
}

// Value is a field value together with its State.
type Value[T any] struct {
	State State
	V     T
}

// Get returns the value and whether it was provided.
func (v Value[T]) Get() (T, bool) {
	return v.V, v.State == Provided
}

func provided[T any](v T) Value[T] {
	return Value[T]{State: Provided, V: v}
}

// Candidate is one decoded import row.
type Candidate struct {
	// Row is the 1-based sheet row number.
	Row      int
	ItemName string

	// SellingPrice and CurrentQuantity carry their coerced value even when
	// absent (zero), negative or unparsable input coerces to zero.
	SellingPrice    Value[decimal.Decimal]
	CurrentQuantity Value[int]

	UnitType   Value[string]
	ExpiryDate Value[time.Time]
	Status     Value[string]
}

// DecodeRow builds a candidate from a sheet row. ok is false when the row
// carries no item name.
func DecodeRow(row sheet.Row, cols ColumnMap) (Candidate, bool) {
	c := Candidate{Row: row.Number}

	cell, present := cols.Lookup(row, FieldItemName)
	if !present {
		return c, false
	}
	c.ItemName = strings.TrimSpace(cell.Text())
	if c.ItemName == "" {
		return c, false
	}

	if cell, present := cols.Lookup(row, FieldSellingPrice); present {
		c.SellingPrice = provided(coercePrice(cell))
	}
	if cell, present := cols.Lookup(row, FieldCurrentQuantity); present {
		c.CurrentQuantity = provided(coerceQuantity(cell))
	}
	if cell, present := cols.Lookup(row, FieldUnitType); present {
		if unit := strings.TrimSpace(cell.Text()); unit != "" {
			c.UnitType = provided(unit)
		}
	}
	if cell, present := cols.Lookup(row, FieldExpiryDate); present {
		if t, ok := ParseExpiry(cell); ok {
			c.ExpiryDate = provided(t)
		} else {
			c.ExpiryDate = Value[time.Time]{State: Invalid}
		}
	}
	if cell, present := cols.Lookup(row, FieldStatus); present {
		status := models.NormalizeStatus(cell.Text())
		if status == "" {
			status = models.StatusNotYet
		}
		c.Status = provided(status)
	}
	return c, true
}

func coercePrice(cell sheet.Cell) decimal.Decimal {
	f := utils.ToFloat(cell.Text())
	if f <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f).Round(2)
}

func coerceQuantity(cell sheet.Cell) int {
	n := utils.ToInt(cell.Text())
	if n < 0 {
		return 0
	}
	return n
}

// serialEpochOffset is the number of days between the spreadsheet date
// serial epoch and 1970-01-01.
const serialEpochOffset = 25569

// maxSerial is 9999-12-31.
const maxSerial = 2958465

// SerialToTime converts a spreadsheet date serial to a UTC timestamp.
func SerialToTime(serial float64) time.Time {
	secs := math.Round((serial - serialEpochOffset) * 86400)
	return time.Unix(int64(secs), 0).UTC()
}

// dateLayouts are the accepted textual date formats, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02-01-2006",
	"2 Jan 2006",
	"January 2, 2006",
	time.RFC3339,
}

// ParseDate parses a textual calendar date in one of the accepted layouts.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ParseExpiry interprets an expiry cell: numbers are date serials, anything
// else must be a calendar date. Serials at or below zero are rejected; they
// come from cleared date cells or date arithmetic and would otherwise land
// the item on a 1899 expiry.
func ParseExpiry(cell sheet.Cell) (time.Time, bool) {
	if serial, ok := cell.Number(); ok {
		if serial <= 0 || serial > maxSerial {
			return time.Time{}, false
		}
		return SerialToTime(serial), true
	}
	return ParseDate(cell.Text())
}
