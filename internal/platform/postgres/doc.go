// Package postgres provides the PostgreSQL implementations of the store
// interfaces, plus connection setup and embedded schema migrations.
package postgres
