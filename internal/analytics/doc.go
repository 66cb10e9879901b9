// Package analytics computes dashboard summaries and budget-versus-actual
// reports from in-memory snapshots of a user's ledger, budgets and the
// category catalog.
//
// Every function in this package is pure: it performs no I/O, never mutates
// its inputs and returns either a complete result or an error.
package analytics
