// Package store defines interfaces for catalog persistence. These interfaces
// abstract where divisions and units come from, so the deck builder works the
// same whether the catalog is served from Postgres or from a catalog file.
package store
