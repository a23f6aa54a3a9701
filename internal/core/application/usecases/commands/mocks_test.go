package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	return m.Called(ctx, d).Error(0)
}
func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	return m.Called(ctx, d).Error(0)
}
func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}
func (m *MockDriverRepository) GetAllAvailable(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}
func (m *MockVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}
func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}
func (m *MockVehicleRepository) GetAllAvailable(ctx context.Context) ([]*vehicle.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vehicle.Vehicle), args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, r *route.Route) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockRouteRepository) Update(ctx context.Context, r *route.Route) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}
func (m *MockShipmentRepository) GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}
func (m *MockShipmentRepository) GetAllOverdueInTransit(ctx context.Context) ([]*shipment.Shipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}
func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}
func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}
func (m *MockDeliveryRepository) GetByShipment(ctx context.Context, shipmentID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

// MockUoW satisfies every unit of work composition used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockUoW) DriverRepository() ports.DriverRepository {
	return m.Called().Get(0).(ports.DriverRepository)
}
func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	return m.Called().Get(0).(ports.VehicleRepository)
}
func (m *MockUoW) RouteRepository() ports.RouteRepository {
	return m.Called().Get(0).(ports.RouteRepository)
}
func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	return m.Called().Get(0).(ports.ShipmentRepository)
}
func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	return m.Called().Get(0).(ports.DeliveryRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	return m.Called().Get(0).(commands.DriverUoW)
}

type MockVehicleUoWFactory struct{ mock.Mock }

func (m *MockVehicleUoWFactory) Create() commands.VehicleUoW {
	return m.Called().Get(0).(commands.VehicleUoW)
}

type MockRouteUoWFactory struct{ mock.Mock }

func (m *MockRouteUoWFactory) Create() commands.RouteUoW {
	return m.Called().Get(0).(commands.RouteUoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	return m.Called().Get(0).(commands.ShipmentUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return m.Called().Get(0).(commands.DeliveryUoW)
}

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	now := time.Now()
	ord, err := order.NewOrder(
		kernel.NewUUID(), "ORD-1001", kernel.NewUUID(), kernel.NewUUID(),
		now, now.AddDate(0, 0, 3), 149.90, order.PriorityNormal,
		order.Details{Description: "pallet of spare parts", TotalWeightKg: 320, TotalVolumeCubicM: 1.2},
	)
	require.NoError(t, err)
	return ord
}

func orderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	src := pendingOrder(t)
	ord, err := order.RestoreOrder(
		src.ID(), src.OrderNumber(), src.CustomerID(), src.WarehouseID(),
		src.OrderDate(), src.DeliveryDate(), src.Cost(), src.Priority(), src.Details(), status)
	require.NoError(t, err)
	return ord
}

func availableDriver(t *testing.T) *driver.Driver {
	t.Helper()
	drv, err := driver.NewDriver(
		kernel.NewUUID(), kernel.NewUUID(), "DL-55012", time.Now().AddDate(3, 0, 0), 5)
	require.NoError(t, err)
	return drv
}

func availableVehicle(t *testing.T) *vehicle.Vehicle {
	t.Helper()
	veh, err := vehicle.NewVehicle(
		kernel.NewUUID(), "C 412 KH", "truck", "Volvo", "FH16", 2020,
		vehicle.Capacity{WeightKg: 18000, VolumeCubicM: 86})
	require.NoError(t, err)
	return veh
}

func activeRoute(t *testing.T) *route.Route {
	t.Helper()
	rt, err := route.NewRoute(
		kernel.NewUUID(), "North corridor", "Riga", "Tallinn", 310, 5*time.Hour)
	require.NoError(t, err)
	return rt
}

func shipmentInStatus(
	t *testing.T,
	status shipment.Status,
	orderID, driverID, vehicleID, routeID kernel.UUID,
) *shipment.Shipment {
	t.Helper()
	var departure, expected *time.Time
	if status != shipment.Pending {
		d := time.Now().Add(-2 * time.Hour)
		e := time.Now().Add(3 * time.Hour)
		departure, expected = &d, &e
	}
	shp, err := shipment.RestoreShipment(
		kernel.NewUUID(), "SHP-2001", orderID, driverID, vehicleID,
		routeID, 75.50, status, departure, expected, nil, 0, 0, false)
	require.NoError(t, err)
	return shp
}

func recipient() delivery.Recipient {
	return delivery.Recipient{
		Name:    "Anna Ozols",
		Phone:   "+371 2000 0000",
		Address: "Brivibas iela 1",
		City:    "Riga",
	}
}
