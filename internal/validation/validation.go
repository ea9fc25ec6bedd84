// Package validation binds and validates request bodies.
//
// It uses the `validator` library for rules declared in struct tags and
// converts failures into field errors the client can understand.
package validation
