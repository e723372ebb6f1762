// Package shared provides helpers used by handlers and middleware: JSON
// responders, request decoding and validation, and context plumbing for
// trace IDs and validated payloads.
package shared
