package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/generated/servers"
	"ordering/internal/metrics"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	confirmOrderHandler commands.ConfirmOrderCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler
	addItemHandler      commands.AddItemCommandHandler
	removeItemHandler   commands.RemoveItemCommandHandler

	// Query handlers
	getOrderHandler         queries.GetOrderQueryHandler
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler

	orderMetrics *metrics.OrderMetrics
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	addItemHandler commands.AddItemCommandHandler,
	removeItemHandler commands.RemoveItemCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	orderMetrics *metrics.OrderMetrics,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		confirmOrderHandler:     confirmOrderHandler,
		cancelOrderHandler:      cancelOrderHandler,
		addItemHandler:          addItemHandler,
		removeItemHandler:       removeItemHandler,
		getOrderHandler:         getOrderHandler,
		getPendingOrdersHandler: getPendingOrdersHandler,
		orderMetrics:            orderMetrics,
	}
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]commands.ItemInput, len(request.Items))
	for i, item := range request.Items {
		productName := item.ProductId
		if item.ProductName != nil {
			productName = *item.ProductName
		}

		items[i] = commands.ItemInput{
			ProductID:   item.ProductId,
			ProductName: productName,
			UnitPrice:   item.UnitPrice,
			Currency:    string(item.Currency),
			Quantity:    item.Quantity,
		}
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, string(request.CustomerEmail), items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.errorResponse(ctx, handleErr)
	}
	s.orderMetrics.RecordOrderCreated()

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Id: orderID.Bytes()})
}

// GetPendingOrders handles GET /api/v1/orders/pending - lists orders awaiting confirmation.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	query := queries.NewGetPendingOrdersQuery()

	pendingOrders, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve pending orders",
		})
	}

	response := make([]servers.PendingOrder, len(pendingOrders))
	for i, pending := range pendingOrders {
		response[i] = servers.PendingOrder{
			Id:            pending.ID.Bytes(),
			CustomerEmail: openapi_types.Email(pending.CustomerEmail),
			CreatedAt:     pending.CreatedAt,
			ItemCount:     pending.ItemCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves an order with its price breakdown.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderView(view))
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirm - charges the customer
// and confirms a pending order.
func (s *Server) ConfirmOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	if handleErr := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, ports.ErrPaymentDeclined) {
			s.orderMetrics.RecordPaymentFailure()

			return ctx.JSON(http.StatusPaymentRequired, servers.Error{
				Code:    http.StatusPaymentRequired,
				Message: "Payment was declined",
			})
		}

		return s.errorResponse(ctx, handleErr)
	}
	s.orderMetrics.RecordOrderConfirmed()

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel - cancels an order.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	previousStatus, handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return s.errorResponse(ctx, handleErr)
	}
	s.orderMetrics.RecordOrderCancelled(previousStatus == order.Pending)

	return ctx.NoContent(http.StatusNoContent)
}

// AddOrderItem handles POST /api/v1/orders/{orderId}/items - adds an item to a pending order.
func (s *Server) AddOrderItem(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	var request servers.AddOrderItemJSONRequestBody
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	productName := request.ProductId
	if request.ProductName != nil {
		productName = *request.ProductName
	}

	cmd, err := commands.NewAddItemCommand(orderID, commands.ItemInput{
		ProductID:   request.ProductId,
		ProductName: productName,
		UnitPrice:   request.UnitPrice,
		Currency:    string(request.Currency),
		Quantity:    request.Quantity,
	})
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid item data: " + err.Error(),
		})
	}

	if handleErr := s.addItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderItem handles DELETE /api/v1/orders/{orderId}/items/{productId} - removes
// an item from a pending order.
func (s *Server) RemoveOrderItem(ctx echo.Context, orderId openapi_types.UUID, productId string) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	cmd, err := commands.NewRemoveItemCommand(orderID, productId)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid product identifier",
		})
	}

	if handleErr := s.removeItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// errorResponse maps application errors onto HTTP status codes. Lifecycle
// violations become 409, missing aggregates 404, and everything else 500.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, order.ErrItemNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrAlreadyCancelled),
		errors.Is(err, order.ErrOrderNotModifiable),
		errors.Is(err, order.ErrNonPositiveTotal),
		errors.Is(err, order.ErrEmptyItems):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}
}

// toOrderView converts a query response into its transport representation.
func toOrderView(view queries.GetOrderQueryResponse) servers.OrderView {
	items := make([]servers.OrderItem, len(view.Items))
	for i, item := range view.Items {
		items[i] = servers.OrderItem{
			ProductId:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice.Amount(),
			Currency:    string(item.UnitPrice.Currency()),
			Quantity:    item.Quantity,
			LineTotal:   item.LineTotal.Amount(),
		}
	}

	var breakdown *servers.PriceBreakdown
	if view.Breakdown != nil {
		breakdown = &servers.PriceBreakdown{
			Subtotal: view.Breakdown.Subtotal.Amount(),
			Tax:      view.Breakdown.Tax.Amount(),
			Total:    view.Breakdown.Total.Amount(),
			Currency: string(view.Breakdown.Total.Currency()),
		}
	}

	return servers.OrderView{
		Id:            view.ID.Bytes(),
		CustomerEmail: openapi_types.Email(view.CustomerEmail),
		Status:        servers.OrderViewStatus(view.Status.String()),
		CreatedAt:     view.CreatedAt,
		ConfirmedAt:   view.ConfirmedAt,
		Items:         items,
		Breakdown:     breakdown,
	}
}
