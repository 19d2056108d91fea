// Package service contains the application use cases for the board game
// catalogue. A ResourceService translates identifiers and typed records into
// document store calls for one resource kind, and translates store outcomes
// into the vocabulary the API layer expects: a missing document is a nil
// result, not an error.
//
// Services receive their store collection through constructor injection;
// connection lifecycle belongs to the process entry point.
package service
