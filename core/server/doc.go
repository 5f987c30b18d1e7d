// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package
// defines the settings it needs: listen port, API key and the upload size
// limit applied to the Fiber body parser.
package server
