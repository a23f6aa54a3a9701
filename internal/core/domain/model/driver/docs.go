// Package driver implements the Driver aggregate: a claimable resource
// whose availability is owned by the resource registry.
package driver
