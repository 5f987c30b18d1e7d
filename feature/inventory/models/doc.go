// Package models holds the persisted inventory types.
package models
