// Package mongodb implements store.Collection on MongoDB using the official
// Go driver. Identifiers are ObjectIDs exposed as 24-character hex strings,
// and updates are applied with $set so unsent fields keep their values.
package mongodb
