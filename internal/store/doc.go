// Package store defines the interfaces and errors for user data access.
// Implementations live in subpackages; the only one shipped today is the
// in-memory store in store/memory.
package store
