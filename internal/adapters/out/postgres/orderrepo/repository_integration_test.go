package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

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

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	email, err := kernel.NewEmail("buyer@example.com")
	suite.Require().NoError(err)

	price, err := kernel.NewMoney(10000, kernel.USD)
	suite.Require().NoError(err)
	monitor, err := order.NewLineItem("P1", "Monitor", price, 2)
	suite.Require().NoError(err)

	cablePrice, err := kernel.NewMoney(500, kernel.USD)
	suite.Require().NoError(err)
	cable, err := order.NewLineItem("P2", "Cable", cablePrice, 1)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), email, []order.LineItem{monitor, cable})
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	var orderCount, itemCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Model(&orderrepo.LineItemDTO{}).Count(&itemCount).Error)
	suite.Equal(int64(1), orderCount)
	suite.Equal(int64(2), itemCount)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal("buyer@example.com", retrieved.CustomerEmail().String())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Nil(retrieved.ConfirmedAt())
	suite.Len(retrieved.Items(), 2)

	itemsByProduct := make(map[string]order.LineItem)
	for _, item := range retrieved.Items() {
		itemsByProduct[item.ProductID()] = item
	}
	suite.Equal(2, itemsByProduct["P1"].Quantity())
	suite.Equal(int64(10000), itemsByProduct["P1"].UnitPrice().Amount())
	suite.Equal("Cable", itemsByProduct["P2"].ProductName())

	total, err := retrieved.Total()
	suite.Require().NoError(err)
	suite.Equal(int64(22140), total.Amount()) // 20500 subtotal + 8% tax

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ConfirmedOrder_PersistsStatusAndTimestamp() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	confirmed, err := testOrder.Confirm()
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, confirmed))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, retrieved.Status())
	suite.Require().NotNil(retrieved.ConfirmedAt())
	suite.WithinDuration(*confirmed.ConfirmedAt(), *retrieved.ConfirmedAt(), time.Second)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ChangedItems_ReplacesLineItems() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	changed, err := testOrder.RemoveItem("P2")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, changed))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Len(retrieved.Items(), 1)
	suite.Equal("P1", retrieved.Items()[0].ProductID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatus_ReturnsOnlyMatching() {
	ctx := context.Background()

	pending := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	toConfirm := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, toConfirm))
	confirmed, err := toConfirm.Confirm()
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, confirmed))

	pendingOrders, err := suite.repository.GetAllInStatus(ctx, order.Pending)
	suite.Require().NoError(err)
	suite.Require().Len(pendingOrders, 1)
	suite.Equal(pending.ID(), pendingOrders[0].ID())

	confirmedOrders, err := suite.repository.GetAllInStatus(ctx, order.Confirmed)
	suite.Require().NoError(err)
	suite.Require().Len(confirmedOrders, 1)
	suite.Equal(toConfirm.ID(), confirmedOrders[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetPendingCreatedBefore_FiltersByAgeAndStatus() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	fresh := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, fresh))

	staleOrder := suite.restoreBackdatedOrder(time.Now().UTC().Add(-2 * time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, staleOrder))

	stale, err := suite.repository.GetPendingCreatedBefore(ctx, time.Now().UTC().Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(stale, 1)
	suite.Equal(staleOrder.ID(), stale[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) restoreBackdatedOrder(createdAt time.Time) *order.Order {
	email, err := kernel.NewEmail("buyer@example.com")
	suite.Require().NoError(err)

	price, err := kernel.NewMoney(10000, kernel.USD)
	suite.Require().NoError(err)
	item, err := order.NewLineItem("P1", "Monitor", price, 1)
	suite.Require().NoError(err)

	backdated, err := order.RestoreOrder(
		kernel.NewUUID(), email, []order.LineItem{item}, order.Pending, createdAt, nil,
	)
	suite.Require().NoError(err)
	return backdated
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
