// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL or SQLite connections from the application's
// configuration. SQLite is mostly used for local runs and tests (":memory:").
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table in a dialect-aware way, and
// MissingColumns reports which required columns are absent. The inventory
// feature uses the latter to refuse serving against an unmigrated schema.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "inventory_items", []string{"item_name"})
package database
