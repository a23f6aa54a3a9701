// Package vehicle implements the Vehicle aggregate: a claimable resource
// whose availability is owned by the resource registry.
package vehicle
