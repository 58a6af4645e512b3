// Package middleware holds the global and route-level echo middleware:
// request IDs, logging, tracing, metrics, rate limiting, panic recovery
// and the error handler that shapes every failed response.
package middleware
