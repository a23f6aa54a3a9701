// Package services contains domain services, logic outside aggregate
// boundaries. ResourceRegistry arbitrates driver/vehicle claims across
// shipments.
package services
