// Package testdb provides utilities for database integration tests: opening
// the test database, applying the catalog schema and isolating each test in a
// rolled-back transaction. Tests using it skip themselves when no test
// database URL is configured.
package testdb
