// Package sqlite implements store.Collection on an embedded SQLite database.
// All collections share one documents table holding JSON text keyed by UUID.
package sqlite
