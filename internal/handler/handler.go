// Package handler is the HTTP entry point after the router.
//
// Handlers bind and validate request payloads through the validation
// package, call the matching service and write the JSON response.
package handler
