// Package archive models the historical copies written when an order completes.
//
// The package includes:
//   - ArchivedOrder: a point-in-time snapshot of a completed order with its own identity
//   - ArchivedItem: a snapshot of one line of that order
//   - Receipt: marks that a bill has started completing; points at the first archived order
//
// Archived values are immutable. The source order is retained next to its
// snapshot, so both exist for the rest of the order's life.
package archive
