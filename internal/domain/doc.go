// Package domain contains the catalog entities of the deck builder: units,
// packs, divisions and their cost matrices. These values are loaded once per
// editing session by a catalog provider and are read-only afterwards.
package domain
