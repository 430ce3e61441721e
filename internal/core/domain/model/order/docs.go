// Package order provides the Order aggregate of the table ordering service and
// the status state machine that governs it.
//
// The package includes:
//   - Order: one placed cart under a bill, with its immutable line items
//   - Item: a menu line with quantity, unit price and optional notes
//   - Status: the lifecycle state machine
//
// Key business rules:
//   - Status follows pending -> preparing -> ready -> completed, with a single
//     side branch pending -> cancelled
//   - completed and cancelled are terminal; no transition leaves them
//   - Items never change once the order is placed; subtotal = quantity x price
//   - Orders are never deleted, not even after archival
package order
