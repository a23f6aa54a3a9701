package queries_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type RevenueQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.RevenueQueryHandler
}

func (suite *RevenueQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &shipmentrepo.ShipmentDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewRevenueQueryHandler(db)
}

func (suite *RevenueQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *RevenueQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, shipments").Error
	suite.Require().NoError(err)
}

func (suite *RevenueQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsZeroes() {
	query, err := queries.NewRevenueQuery(order.Unknown)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Zero(result.TotalRevenue)
	suite.Zero(result.TotalShipments)
	suite.Zero(result.AverageShipmentCost)
}

func (suite *RevenueQueryHandlerTestSuite) TestHandle_SumsOrdersAndAveragesShipments() {
	suite.insertOrder(100.00, order.Pending)
	suite.insertOrder(250.00, order.Shipped)
	suite.insertOrder(50.00, order.Cancelled)
	suite.insertShipment(90.00, shipment.Delivered)
	suite.insertShipment(30.00, shipment.InTransit)

	query, err := queries.NewRevenueQuery(order.Unknown)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.InDelta(400.00, result.TotalRevenue, 0.001)
	suite.Equal(int64(2), result.TotalShipments)
	suite.InDelta(60.00, result.AverageShipmentCost, 0.001)
}

func (suite *RevenueQueryHandlerTestSuite) TestHandle_StatusFilter_NarrowsRevenueOnly() {
	suite.insertOrder(100.00, order.Delivered)
	suite.insertOrder(300.00, order.Delivered)
	suite.insertOrder(999.00, order.Cancelled)
	suite.insertShipment(90.00, shipment.Delivered)
	suite.insertShipment(30.00, shipment.Cancelled)

	query, err := queries.NewRevenueQuery(order.Delivered)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.InDelta(400.00, result.TotalRevenue, 0.001)
	suite.Equal(int64(2), result.TotalShipments)
	suite.InDelta(60.00, result.AverageShipmentCost, 0.001)
}

func (suite *RevenueQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.RevenueQuery{})

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewRevenueQuery constructor")
}

func (suite *RevenueQueryHandlerTestSuite) insertOrder(cost float64, status order.Status) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	dto := orderrepo.OrderDTO{
		ID:            kernel.NewUUID().Bytes(),
		OrderNumber:   "ORD-" + uuid.NewString(),
		CustomerID:    kernel.NewUUID().Bytes(),
		WarehouseID:   kernel.NewUUID().Bytes(),
		OrderDate:     now,
		DeliveryDate:  now.Add(72 * time.Hour),
		Description:   "Test cargo",
		TotalWeightKg: 10,
		Cost:          cost,
		Priority:      int(order.PriorityNormal),
		Status:        int(status),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func (suite *RevenueQueryHandlerTestSuite) insertShipment(cost float64, status shipment.Status) {
	dto := shipmentrepo.ShipmentDTO{
		ID:             kernel.NewUUID().Bytes(),
		ShipmentNumber: "SHP-" + uuid.NewString(),
		OrderID:        kernel.NewUUID().Bytes(),
		DriverID:       kernel.NewUUID().Bytes(),
		VehicleID:      kernel.NewUUID().Bytes(),
		RouteID:        kernel.NewUUID().Bytes(),
		Status:         int(status),
		Cost:           cost,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func TestRevenueQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RevenueQueryHandlerTestSuite))
}
