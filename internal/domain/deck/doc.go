// Package deck implements the deck-composition engine: veterancy quantity
// resolution, slot category classification, grouping of catalog packs and
// selected packs per category, the selection ledger and the slot/eligibility
// evaluator.
//
// Everything in this package is synchronous and free of I/O. The Ledger is the
// only mutable state; groupings and slot states are recomputed from it on
// demand and never cached.
package deck
