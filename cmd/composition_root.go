package cmd

import (
	"log/slog"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"
	"logistics/internal/jobs"
	"logistics/internal/pkg/locks"

	"gorm.io/gorm"
)

// CompositionRoot wires repositories, domain services and use case handlers
// together. The locker and registry are shared across every handler so
// per-entity serialization and resource claims see one consistent state.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	registry   services.ResourceRegistry
	locker     *locks.KeyedMutex
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:   services.NewResourceRegistry(),
		locker:     locks.NewKeyedMutex(),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f, c.locker)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() commands.CreateVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() commands.CreateRouteCommandHandler {
	var f commands.RouteUoWFactory = FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRouteCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchShipmentCommandHandler() commands.DispatchShipmentCommandHandler {
	return commands.NewDispatchShipmentCommandHandler(c.shipmentUoWFactory(), c.registry, c.locker)
}

func (c *CompositionRoot) CreateAdvanceShipmentCommandHandler() commands.AdvanceShipmentCommandHandler {
	return commands.NewAdvanceShipmentCommandHandler(c.shipmentUoWFactory(), c.registry, c.locker)
}

func (c *CompositionRoot) CreateRecordDeliveryAttemptCommandHandler() commands.RecordDeliveryAttemptCommandHandler {
	return commands.NewRecordDeliveryAttemptCommandHandler(c.deliveryUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.deliveryUoWFactory(), c.registry, c.locker)
}

func (c *CompositionRoot) CreateFailDeliveryCommandHandler() commands.FailDeliveryCommandHandler {
	return commands.NewFailDeliveryCommandHandler(c.deliveryUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentsQueryHandler() queries.GetShipmentsQueryHandler {
	return queries.NewGetShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveriesQueryHandler() queries.GetDeliveriesQueryHandler {
	return queries.NewGetDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriversQueryHandler() queries.GetDriversQueryHandler {
	return queries.NewGetDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVehiclesQueryHandler() queries.GetVehiclesQueryHandler {
	return queries.NewGetVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRoutesQueryHandler() queries.GetRoutesQueryHandler {
	return queries.NewGetRoutesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrdersByStatusQueryHandler() queries.OrdersByStatusQueryHandler {
	return queries.NewOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateRevenueQueryHandler() queries.RevenueQueryHandler {
	return queries.NewRevenueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateDriverPerformanceQueryHandler() queries.DriverPerformanceQueryHandler {
	return queries.NewDriverPerformanceQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the REST API over the full use case set.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		httpin.CommandHandlers{
			CreateOrder:           c.CreateCreateOrderCommandHandler(),
			TransitionOrder:       c.CreateTransitionOrderCommandHandler(),
			CreateDriver:          c.CreateCreateDriverCommandHandler(),
			CreateVehicle:         c.CreateCreateVehicleCommandHandler(),
			CreateRoute:           c.CreateCreateRouteCommandHandler(),
			DispatchShipment:      c.CreateDispatchShipmentCommandHandler(),
			AdvanceShipment:       c.CreateAdvanceShipmentCommandHandler(),
			RecordDeliveryAttempt: c.CreateRecordDeliveryAttemptCommandHandler(),
			CompleteDelivery:      c.CreateCompleteDeliveryCommandHandler(),
			FailDelivery:          c.CreateFailDeliveryCommandHandler(),
		},
		httpin.QueryHandlers{
			GetOrders:         c.CreateGetOrdersQueryHandler(),
			GetOrder:          c.CreateGetOrderQueryHandler(),
			GetShipments:      c.CreateGetShipmentsQueryHandler(),
			GetDeliveries:     c.CreateGetDeliveriesQueryHandler(),
			GetDrivers:        c.CreateGetDriversQueryHandler(),
			GetVehicles:       c.CreateGetVehiclesQueryHandler(),
			GetRoutes:         c.CreateGetRoutesQueryHandler(),
			OrdersByStatus:    c.CreateOrdersByStatusQueryHandler(),
			Revenue:           c.CreateRevenueQueryHandler(),
			DriverPerformance: c.CreateDriverPerformanceQueryHandler(),
		},
	)
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.shipmentUoWFactory(),
		c.CreateAdvanceShipmentCommandHandler(),
		logger,
	)
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
