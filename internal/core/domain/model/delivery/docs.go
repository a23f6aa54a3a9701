// Package delivery implements the Delivery aggregate: the attempt cycle of
// handing a shipment's goods to a recipient, with a signature invariant and
// a capped attempt counter.
package delivery
