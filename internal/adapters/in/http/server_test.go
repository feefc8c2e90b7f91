package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/generated/servers"
	"ordering/internal/metrics"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(
	ctx context.Context, status order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetPendingCreatedBefore(
	ctx context.Context, cutoff time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) Charge(
	ctx context.Context, amount kernel.Money, customerEmail kernel.Email,
) (ports.PaymentReference, error) {
	args := m.Called(ctx, amount, customerEmail)
	return args.Get(0).(ports.PaymentReference), args.Error(1)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishOrderConfirmed(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderEventPublisher) PublishOrderCancelled(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func newTestServer(
	factory commands.OrderUoWFactory,
	gateway ports.PaymentGateway,
	publisher ports.OrderEventPublisher,
) *Server {
	return NewServer(
		commands.NewCreateOrderCommandHandler(factory),
		commands.NewConfirmOrderCommandHandler(factory, gateway, publisher),
		commands.NewCancelOrderCommandHandler(factory, publisher),
		commands.NewAddItemCommandHandler(factory),
		commands.NewRemoveItemCommandHandler(factory),
		queries.GetOrderQueryHandler{},
		queries.GetPendingOrdersQueryHandler{},
		metrics.NewOrderMetrics(),
	)
}

func pendingOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	email, err := kernel.NewEmail("buyer@example.com")
	require.NoError(t, err)
	price, err := kernel.NewMoney(10000, kernel.USD)
	require.NoError(t, err)
	item, err := order.NewLineItem("P1", "Monitor", price, 2)
	require.NoError(t, err)
	aggregate, err := order.NewOrder(id, email, []order.LineItem{item})
	require.NoError(t, err)
	return aggregate
}

func TestServer_CreateOrder_Created(t *testing.T) {
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", mock.Anything).Return(nil).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	server := newTestServer(factory, new(MockPaymentGateway), new(MockOrderEventPublisher))

	body := `{
		"customerEmail": "buyer@example.com",
		"items": [
			{"productId": "P1", "productName": "Monitor", "unitPrice": 10000, "currency": "USD", "quantity": 2}
		]
	}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := server.CreateOrder(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created servers.OrderCreated
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEqual(t, uuid.Nil, created.Id)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestServer_CreateOrder_InvalidEmail(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	server := newTestServer(factory, new(MockPaymentGateway), new(MockOrderEventPublisher))

	body := `{
		"customerEmail": "not-an-email",
		"items": [
			{"productId": "P1", "unitPrice": 10000, "currency": "USD", "quantity": 2}
		]
	}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := server.CreateOrder(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	factory.AssertNotCalled(t, "Create")
}

func TestServer_CreateOrder_EmptyItems(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	server := newTestServer(factory, new(MockPaymentGateway), new(MockOrderEventPublisher))

	body := `{"customerEmail": "buyer@example.com", "items": []}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := server.CreateOrder(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_ConfirmOrder_PaymentDeclined(t *testing.T) {
	id := kernel.NewUUID()
	aggregate := pendingOrder(t, id)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	gateway := new(MockPaymentGateway)
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once(),
		gateway.On("Charge", mock.Anything, mock.AnythingOfType("kernel.Money"), aggregate.CustomerEmail()).
			Return(ports.PaymentReference(""), ports.ErrPaymentDeclined).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	server := newTestServer(factory, gateway, new(MockOrderEventPublisher))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/orders/"+id.String()+"/confirm", nil)
	rec := httptest.NewRecorder()

	err := server.ConfirmOrder(e.NewContext(req, rec), id.Bytes())

	require.NoError(t, err)
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestServer_ConfirmOrder_AlreadyCancelled(t *testing.T) {
	id := kernel.NewUUID()
	cancelled, err := pendingOrder(t, id).Cancel()
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(cancelled, nil).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	server := newTestServer(factory, new(MockPaymentGateway), new(MockOrderEventPublisher))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/orders/"+id.String()+"/confirm", nil)
	rec := httptest.NewRecorder()

	err = server.ConfirmOrder(e.NewContext(req, rec), id.Bytes())

	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestServer_CancelOrder_NotFound(t *testing.T) {
	id := kernel.NewUUID()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	server := newTestServer(factory, new(MockPaymentGateway), new(MockOrderEventPublisher))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/orders/"+id.String()+"/cancel", nil)
	rec := httptest.NewRecorder()

	err := server.CancelOrder(e.NewContext(req, rec), id.Bytes())

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var errBody servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.EqualValues(t, http.StatusNotFound, errBody.Code)
}

func TestServer_RemoveOrderItem_ItemNotFound(t *testing.T) {
	id := kernel.NewUUID()
	aggregate := pendingOrder(t, id)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	server := newTestServer(factory, new(MockPaymentGateway), new(MockOrderEventPublisher))

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/orders/"+id.String()+"/items/UNKNOWN", nil)
	rec := httptest.NewRecorder()

	err := server.RemoveOrderItem(e.NewContext(req, rec), id.Bytes(), "UNKNOWN")

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestToOrderView(t *testing.T) {
	id := kernel.NewUUID()
	unitPrice, err := kernel.NewMoney(10000, kernel.USD)
	require.NoError(t, err)
	lineTotal, err := kernel.NewMoney(20000, kernel.USD)
	require.NoError(t, err)
	subtotal, err := kernel.NewMoney(20000, kernel.USD)
	require.NoError(t, err)
	tax, err := kernel.NewMoney(1600, kernel.USD)
	require.NoError(t, err)
	total, err := kernel.NewMoney(21600, kernel.USD)
	require.NoError(t, err)

	createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	confirmedAt := createdAt.Add(time.Hour)

	view := toOrderView(queries.GetOrderQueryResponse{
		ID:            id,
		CustomerEmail: "buyer@example.com",
		Status:        order.Confirmed,
		CreatedAt:     createdAt,
		ConfirmedAt:   &confirmedAt,
		Items: []queries.GetOrderQueryItemResponse{
			{ProductID: "P1", ProductName: "Monitor", UnitPrice: unitPrice, Quantity: 2, LineTotal: lineTotal},
		},
		Breakdown: &services.PriceBreakdown{Subtotal: subtotal, Tax: tax, Total: total},
	})

	assert.Equal(t, id.Bytes(), view.Id)
	assert.Equal(t, servers.Confirmed, view.Status)
	require.NotNil(t, view.ConfirmedAt)
	assert.Equal(t, confirmedAt, *view.ConfirmedAt)
	require.Len(t, view.Items, 1)
	assert.Equal(t, int64(20000), view.Items[0].LineTotal)
	require.NotNil(t, view.Breakdown)
	assert.Equal(t, int64(20000), view.Breakdown.Subtotal)
	assert.Equal(t, int64(1600), view.Breakdown.Tax)
	assert.Equal(t, int64(21600), view.Breakdown.Total)
	assert.Equal(t, "USD", view.Breakdown.Currency)
}
