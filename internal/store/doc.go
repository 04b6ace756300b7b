// Package store defines the persistence interfaces and the shared error
// taxonomy used by the resource services. Implementations live in
// internal/platform/postgres.
package store
