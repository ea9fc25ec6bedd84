// Package service contains the business logic.
//
// It sits between the handler layer and the humanize engine: it receives
// validated requests from handlers, runs them through the configured
// engine and returns the result.
package service
