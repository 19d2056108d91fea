// Package api exposes the game and user catalogues over HTTP. A single
// generic ResourceHandler, parameterised by a domain.Kind, decodes and
// validates submissions, calls the resource service and writes the uniform
// JSON envelope defined in package shared.
package api
