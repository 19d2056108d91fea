// Package domain contains the resource records managed by the API, the
// descriptors that tell the generic layers how to validate and store each
// resource kind, and the conversion boundary that turns a raw submission into
// a typed record. It is independent of any transport or storage technology.
package domain
