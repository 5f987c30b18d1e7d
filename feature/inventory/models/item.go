package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status vocabulary of an inventory item.
const (
	StatusNew     = "new"
	StatusChecked = "checked"
	StatusUpdated = "updated"
	StatusNotYet  = "not yet"
)

// Item represents the 'inventory_items' table.
type Item struct {
	ID              uint            `gorm:"column:id;primaryKey" json:"id"`
	ItemName        string          `gorm:"column:item_name;size:255;not null;index" json:"item_name"`
	SellingPrice    decimal.Decimal `gorm:"column:selling_price;type:decimal(12,2);not null;default:0" json:"selling_price" swaggertype:"string" example:"19.99"`
	CurrentQuantity int             `gorm:"column:current_quantity;not null;default:0" json:"current_quantity"`
	UnitType        string          `gorm:"column:unit_type;size:64" json:"unit_type"`
	ExpiryDate      *time.Time      `gorm:"column:expiry_date" json:"expiry_date"`
	Status          string          `gorm:"column:status;size:16;not null;default:'not yet'" json:"status"`
	CreatedAt       time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (Item) TableName() string {
	return "inventory_items"
}

// Column names, shared by the store, the merge policy and the listing sorter.
const (
	ColumnID              = "id"
	ColumnItemName        = "item_name"
	ColumnSellingPrice    = "selling_price"
	ColumnCurrentQuantity = "current_quantity"
	ColumnUnitType        = "unit_type"
	ColumnExpiryDate      = "expiry_date"
	ColumnStatus          = "status"
	ColumnCreatedAt       = "created_at"
	ColumnUpdatedAt       = "updated_at"
)

// RequiredColumns lists the columns the application reads and writes.
func RequiredColumns() []string {
	return []string{
		ColumnID, ColumnItemName, ColumnSellingPrice, ColumnCurrentQuantity,
		ColumnUnitType, ColumnExpiryDate, ColumnStatus, ColumnCreatedAt, ColumnUpdatedAt,
	}
}

// NormalizeStatus lowercases and trims a status value.
func NormalizeStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsValidStatus reports whether s, once normalized, is part of the vocabulary.
func IsValidStatus(s string) bool {
	switch NormalizeStatus(s) {
	case StatusNew, StatusChecked, StatusUpdated, StatusNotYet:
		return true
	}
	return false
}
