// Package postgres implements store.Collection on PostgreSQL. Every
// collection shares a single documents table; records are stored as JSONB
// keyed by UUID, and updates merge the submitted fields into the stored
// document with the jsonb || operator.
package postgres
