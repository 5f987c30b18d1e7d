package inventory

import (
	"fmt"
	"io"
	"time"

	"inventory-tracker/core/sheet"
	"inventory-tracker/feature/inventory/models"
)

// ExportContentType is the media type of an exported workbook.
const ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DefaultDateLayout renders expiry dates when no layout is configured.
const DefaultDateLayout = "01/02/2006"

const exportSheet = "Inventory"

// ExportFilename returns the download name of an export taken at now.
func ExportFilename(now time.Time) string {
	return "Inventory_export_" + now.Format("20060102") + ".xlsx"
}

// WriteExport writes items as a workbook with one row per item.
func WriteExport(w io.Writer, items []models.Item, dateLayout string) error {
	if dateLayout == "" {
		dateLayout = DefaultDateLayout
	}

	sw, err := sheet.NewWriter(exportSheet)
	if err != nil {
		return err
	}
	defer sw.Close()

	header := make([]any, len(Labels))
	for i, label := range Labels {
		header[i] = label
	}
	if err := sw.WriteRow(header...); err != nil {
		return err
	}

	for _, item := range items {
		expiry := ""
		if item.ExpiryDate != nil && !item.ExpiryDate.IsZero() {
			expiry = item.ExpiryDate.Format(dateLayout)
		}
		err := sw.WriteRow(
			item.ItemName,
			item.SellingPrice.InexactFloat64(),
			item.CurrentQuantity,
			item.UnitType,
			expiry,
			item.Status,
		)
		if err != nil {
			return err
		}
	}

	if _, err := sw.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}
