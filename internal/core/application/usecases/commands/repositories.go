// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, per-entity locking
// where state machines are involved, transaction management, and persistence.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// EntityLocker serializes command execution per entity key. Handlers that
// mutate lifecycle state acquire the keys of every entity they touch before
// opening a transaction; multi-key acquisition must be deadlock free.
type EntityLocker interface {
	Lock(keys ...string) (unlock func())
}

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest composition that covers the
// aggregates it modifies.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// RouteRepoFactory provides access to the route repository within a transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// VehicleUoW manages transactions for vehicle-only operations.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
	}

	// VehicleUoWFactory creates new vehicle unit of work instances.
	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// RouteUoW manages transactions for route-only operations.
	RouteUoW interface {
		TxManager
		RouteRepoFactory
	}

	// RouteUoWFactory creates new route unit of work instances.
	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// ShipmentUoW manages transactions for shipment lifecycle operations.
	// Dispatch and every later transition touch the order and the claimed
	// resources atomically with the shipment, so the composition spans all
	// of them.
	ShipmentUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
		VehicleRepoFactory
		RouteRepoFactory
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// DeliveryUoW manages transactions for delivery attempt operations.
	// Completing or terminally failing a delivery advances the shipment, so
	// the composition includes the full shipment scope.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
		VehicleRepoFactory
		RouteRepoFactory
		ShipmentRepoFactory
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
