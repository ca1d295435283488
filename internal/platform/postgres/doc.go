// Package postgres provides the PostgreSQL implementation of the catalog
// storage interfaces defined in the internal/store package. It owns the
// catalog schema (embedded goose migrations), query execution and the mapping
// between catalog rows and domain entities.
package postgres
