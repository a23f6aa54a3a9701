package queries_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type OrdersByStatusQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.OrdersByStatusQueryHandler
}

func (suite *OrdersByStatusQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewOrdersByStatusQueryHandler(db)
}

func (suite *OrdersByStatusQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrdersByStatusQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *OrdersByStatusQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsZeroCounts() {
	result, err := suite.handler.Handle(context.Background(), queries.NewOrdersByStatusQuery())

	suite.Require().NoError(err)
	suite.Len(result.Counts, 5)
	for status, count := range result.Counts {
		suite.Zerof(count, "status %s", status)
	}
}

func (suite *OrdersByStatusQueryHandlerTestSuite) TestHandle_MixedStatuses_CountsEachBucket() {
	suite.insertOrders(order.Pending, 3)
	suite.insertOrders(order.Shipped, 2)
	suite.insertOrders(order.Cancelled, 1)

	result, err := suite.handler.Handle(context.Background(), queries.NewOrdersByStatusQuery())

	suite.Require().NoError(err)
	suite.Equal(int64(3), result.Counts["Pending"])
	suite.Equal(int64(0), result.Counts["Processing"])
	suite.Equal(int64(2), result.Counts["Shipped"])
	suite.Equal(int64(0), result.Counts["Delivered"])
	suite.Equal(int64(1), result.Counts["Cancelled"])
}

func (suite *OrdersByStatusQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.OrdersByStatusQuery{})

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewOrdersByStatusQuery constructor")
}

func (suite *OrdersByStatusQueryHandlerTestSuite) insertOrders(status order.Status, count int) {
	orderDate := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	for range count {
		dto := orderrepo.OrderDTO{
			ID:           kernel.NewUUID().Bytes(),
			OrderNumber:  "ORD-" + uuid.NewString(),
			CustomerID:   kernel.NewUUID().Bytes(),
			WarehouseID:  kernel.NewUUID().Bytes(),
			OrderDate:    orderDate,
			DeliveryDate: orderDate.Add(48 * time.Hour),
			Cost:         50.00,
			Priority:     int(order.PriorityLow),
			Status:       int(status),
		}
		suite.Require().NoError(suite.db.Create(&dto).Error)
	}
}

func TestOrdersByStatusQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrdersByStatusQueryHandlerTestSuite))
}
