// Package middleware stores the global middleware of the backend.
//
// These intercept requests to handle cross-cutting concerns such as
// request IDs, request logging, CORS, tracing and panic recovery.
package middleware
