// Package order implements the Order aggregate of the order ledger: the
// customer request for goods that moves through the monotonic status chain
// Pending -> Processing -> Shipped -> Delivered, with a Cancelled escape
// from any non-terminal state.
package order
