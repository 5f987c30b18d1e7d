package inventory

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"inventory-tracker/feature/inventory/models"
)

// Direction is the sort order of a listing. The zero value leaves the store order.
type Direction string

const (
	DirectionNone Direction = ""
	DirectionAsc  Direction = "asc"
	DirectionDesc Direction = "desc"
)

// ParseDirection accepts "asc", "desc" or an empty string, in any case.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case DirectionNone, DirectionAsc, DirectionDesc:
		return d, nil
	}
	return DirectionNone, fmt.Errorf("%w: unknown sort order %q", ErrInvalidInput, s)
}

// ListQuery selects a sorted page of items.
type ListQuery struct {
	SortKey   string
	Direction Direction
	// Page is 1-based. PageSize <= 0 returns every item on one page.
	Page     int
	PageSize int
}

// Page is one page of a listing.
type Page struct {
	Items    []models.Item `json:"items"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

type sortColumn struct {
	isNull  func(*models.Item) bool
	compare func(a, b *models.Item) int
}

var sortColumns = map[string]sortColumn{
	models.ColumnID: {
		compare: func(a, b *models.Item) int { return cmp.Compare(a.ID, b.ID) },
	},
	models.ColumnItemName: {
		isNull:  func(i *models.Item) bool { return i.ItemName == "" },
		compare: func(a, b *models.Item) int { return compareFold(a.ItemName, b.ItemName) },
	},
	models.ColumnSellingPrice: {
		compare: func(a, b *models.Item) int { return a.SellingPrice.Cmp(b.SellingPrice) },
	},
	models.ColumnCurrentQuantity: {
		compare: func(a, b *models.Item) int { return cmp.Compare(a.CurrentQuantity, b.CurrentQuantity) },
	},
	models.ColumnUnitType: {
		isNull:  func(i *models.Item) bool { return i.UnitType == "" },
		compare: func(a, b *models.Item) int { return compareFold(a.UnitType, b.UnitType) },
	},
	models.ColumnExpiryDate: {
		isNull:  func(i *models.Item) bool { return i.ExpiryDate == nil || i.ExpiryDate.IsZero() },
		compare: func(a, b *models.Item) int { return a.ExpiryDate.Compare(*b.ExpiryDate) },
	},
	models.ColumnStatus: {
		isNull:  func(i *models.Item) bool { return i.Status == "" },
		compare: func(a, b *models.Item) int { return strings.Compare(a.Status, b.Status) },
	},
	models.ColumnCreatedAt: {
		isNull:  func(i *models.Item) bool { return i.CreatedAt.IsZero() },
		compare: func(a, b *models.Item) int { return a.CreatedAt.Compare(b.CreatedAt) },
	},
	models.ColumnUpdatedAt: {
		isNull:  func(i *models.Item) bool { return i.UpdatedAt.IsZero() },
		compare: func(a, b *models.Item) int { return a.UpdatedAt.Compare(b.UpdatedAt) },
	},
}

// SortKeys returns the accepted sort keys.
func SortKeys() []string {
	keys := make([]string, 0, len(sortColumns))
	for k := range sortColumns {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// SortItems sorts items in place by key. Null values go last in both
// directions and ties keep their input order.
func SortItems(items []models.Item, key string, dir Direction) error {
	if dir == DirectionNone || key == "" {
		return nil
	}
	col, ok := sortColumns[key]
	if !ok {
		return fmt.Errorf("%w: unknown sort key %q, expected one of %s", ErrInvalidInput, key, strings.Join(SortKeys(), ", "))
	}

	slices.SortStableFunc(items, func(a, b models.Item) int {
		aNull := col.isNull != nil && col.isNull(&a)
		bNull := col.isNull != nil && col.isNull(&b)
		switch {
		case aNull && bNull:
			return 0
		case aNull:
			return 1
		case bNull:
			return -1
		}
		c := col.compare(&a, &b)
		if dir == DirectionDesc {
			return -c
		}
		return c
	})
	return nil
}

// Paginate slices one page out of items.
func Paginate(items []models.Item, page, size int) Page {
	total := len(items)
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		return Page{Items: items, Total: total, Page: 1, PageSize: total}
	}

	// Compare before multiplying so a huge page number cannot overflow.
	if total == 0 || page-1 > (total-1)/size {
		return Page{Items: []models.Item{}, Total: total, Page: page, PageSize: size}
	}
	start := (page - 1) * size
	end := min(start+size, total)
	return Page{Items: items[start:end], Total: total, Page: page, PageSize: size}
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
