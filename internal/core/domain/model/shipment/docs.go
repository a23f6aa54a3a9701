// Package shipment implements the Shipment aggregate: a single dispatch
// event binding one order to one driver, one vehicle and one route, with a
// closed status machine and exactly-once release of the resource claim.
package shipment
