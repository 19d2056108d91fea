// Package memory provides an in-process implementation of store.Collection.
// It is used for local development without a database and by the end-to-end
// HTTP tests.
package memory
