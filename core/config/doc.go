// Package config provides configuration management for the inventory tracker.
//
// It uses Viper to read environment variables (optionally seeded from a .env
// file via godotenv). Defaults come from the `default` struct tags of each
// section.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key, upload size limit
//   - Database: driver (mysql, sqlite) and connection details
//   - Storage: S3/MinIO credentials and bucket for archives and snapshots
//   - Log: logging level and format
//   - Export: expiry date layout and snapshot schedule
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
