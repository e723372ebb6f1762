// Package api implements the HTTP handlers and error mapping for the user
// collection endpoints. Cross-cutting pipeline stages live in api/middleware
// and common helpers in api/shared.
package api
