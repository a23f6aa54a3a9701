package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-2024-0001")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateOrderNumber_ReturnsError() {
	ctx := context.Background()

	first := suite.createTestOrder("ORD-2024-0002")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createTestOrder("ORD-2024-0002")

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	originalOrder := suite.createTestOrder("ORD-2024-0003")
	suite.tracker.On("TrackAggregate", originalOrder.ID(), originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrievedOrder, err := suite.repository.Get(ctx, originalOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(originalOrder.ID(), retrievedOrder.ID())
	suite.Equal("ORD-2024-0003", retrievedOrder.OrderNumber())
	suite.Equal(originalOrder.CustomerID(), retrievedOrder.CustomerID())
	suite.Equal(originalOrder.WarehouseID(), retrievedOrder.WarehouseID())
	suite.Equal(originalOrder.Details(), retrievedOrder.Details())
	suite.InDelta(originalOrder.Cost(), retrievedOrder.Cost(), 0.001)
	suite.Equal(order.PriorityNormal, retrievedOrder.Priority())
	suite.Equal(order.Pending, retrievedOrder.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedOrder, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrievedOrder)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	originalOrder := suite.createTestOrder("ORD-2024-0004")
	suite.tracker.On("TrackAggregate", originalOrder.ID(), originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrievedOrder, err := suite.repository.GetByNumber(ctx, "ORD-2024-0004")
	suite.Require().NoError(err)
	suite.Equal(originalOrder.ID(), retrievedOrder.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_UnknownNumber_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedOrder, err := suite.repository.GetByNumber(ctx, "ORD-0000-0000")

	suite.Nil(retrievedOrder)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusTransitions() {
	testCases := []struct {
		name          string
		initialStatus order.Status
		updatedStatus order.Status
	}{
		{
			name:          "pending to processing",
			initialStatus: order.Pending,
			updatedStatus: order.Processing,
		},
		{
			name:          "processing to shipped",
			initialStatus: order.Processing,
			updatedStatus: order.Shipped,
		},
		{
			name:          "shipped to cancelled",
			initialStatus: order.Shipped,
			updatedStatus: order.Cancelled,
		},
	}

	ctx := context.Background()
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			initialOrder := suite.createTestOrderWithStatus(tc.name, tc.initialStatus)
			suite.tracker.On("TrackAggregate", initialOrder.ID(), initialOrder).Once()
			suite.Require().NoError(suite.repository.Add(ctx, initialOrder))

			if tc.updatedStatus == order.Cancelled {
				suite.Require().NoError(initialOrder.Cancel())
			} else {
				suite.Require().NoError(initialOrder.TransitionTo(tc.updatedStatus))
			}

			suite.tracker.On("TrackAggregate", initialOrder.ID(), initialOrder).Once()
			suite.Require().NoError(suite.repository.Update(ctx, initialOrder))

			retrievedOrder, err := suite.repository.Get(ctx, initialOrder.ID())
			suite.Require().NoError(err)
			suite.Equal(tc.updatedStatus, retrievedOrder.Status())

			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	nonExistentOrder := suite.createTestOrder("ORD-2024-0005")

	err := suite.repository.Update(ctx, nonExistentOrder)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a pending test order with default values.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(orderNumber string) *order.Order {
	orderDate := time.Now().UTC().Truncate(time.Second)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		orderNumber,
		kernel.NewUUID(),
		kernel.NewUUID(),
		orderDate,
		orderDate.Add(48*time.Hour),
		249.90,
		order.PriorityNormal,
		order.Details{
			Description:       "Office furniture",
			TotalWeightKg:     120,
			TotalVolumeCubicM: 1.8,
			Notes:             "fragile",
		},
	)
	suite.Require().NoError(err)
	return testOrder
}

// createTestOrderWithStatus creates a test order restored into the given status.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderWithStatus(
	orderNumber string, status order.Status,
) *order.Order {
	orderDate := time.Now().UTC().Truncate(time.Second)

	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(),
		orderNumber,
		kernel.NewUUID(),
		kernel.NewUUID(),
		orderDate,
		orderDate.Add(48*time.Hour),
		99.50,
		order.PriorityHigh,
		order.Details{Description: "Spare parts", TotalWeightKg: 40, TotalVolumeCubicM: 0.5},
		status,
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
