// Package services holds domain logic that spans more than one aggregate.
//
// The package includes:
//   - OrderArchiver: turns a completed order into its archive copy and the
//     receipt candidate of its bill
package services
