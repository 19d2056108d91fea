// Package store defines the document persistence contract used by the
// services. A Collection is a key-unique, schemaless collection of records
// addressed by store-generated identifiers; the platform packages provide
// the MongoDB, PostgreSQL, SQLite and in-memory implementations.
package store
