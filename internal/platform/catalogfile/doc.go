// Package catalogfile loads a catalog from a YAML file and serves it through
// the store.CatalogReader interface. It lets the server and the deckctl CLI
// run against a catalog without a database, and is the input format of
// catalog imports into PostgreSQL.
package catalogfile
