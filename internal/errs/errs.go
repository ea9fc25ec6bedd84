// Package errs defines the error shapes the backend returns to clients.
//
// Every failed API call produces the same JSON document, so a frontend
// can show a message (and per-field problems for bad input) without
// guessing at the format.
package errs
