// Package kernel provides the shared value objects of the ordering domain.
//
// The package includes:
//   - UUID: identifier of archived orders
//   - Money: non-negative decimal amount used for prices and totals
//   - BusinessDay: the "today" window in the restaurant's timezone
//   - BillCode: grouping key shared by the orders of one table session
//
// Values are immutable and validated on construction; a zero value fails Validate.
package kernel
