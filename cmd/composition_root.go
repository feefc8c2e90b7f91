package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"ordering/internal/adapters/out/kafka"
	"ordering/internal/adapters/out/payment"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/jobs"
	"ordering/internal/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	publisher    *kafka.OrderEventPublisher
	gateway      *payment.ApprovingGateway
	orderMetrics *metrics.OrderMetrics
	logger       *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	publisher, err := kafka.NewOrderEventPublisher(
		[]string{configs.KafkaHost}, configs.KafkaOrderEventsTopic, logger,
	)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("creating kafka order event publisher: %w", err)
	}

	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:    publisher,
		gateway:      payment.NewApprovingGateway(logger),
		orderMetrics: metrics.NewOrderMetrics(),
		logger:       logger,
	}, nil
}

// Close releases infrastructure resources held by the composition root.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

// OrderMetrics exposes the shared metrics collectors.
func (c *CompositionRoot) OrderMetrics() *metrics.OrderMetrics {
	return c.orderMetrics
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory(), c.gateway, c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	return commands.NewAddItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveItemCommandHandler() commands.RemoveItemCommandHandler {
	return commands.NewRemoveItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	return commands.NewCancelStaleOrdersCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB)
}

// CreateJobManager wires the stale order sweep with the TTL from configuration.
func (c *CompositionRoot) CreateJobManager(configs Config) (*jobs.JobManager, error) {
	ttlMinutes, err := strconv.Atoi(configs.StaleOrderTTLMinutes)
	if err != nil || ttlMinutes <= 0 {
		return nil, fmt.Errorf("invalid STALE_ORDER_TTL_MINUTES value %q", configs.StaleOrderTTLMinutes)
	}

	return jobs.NewJobManager(
		c.CreateCancelStaleOrdersCommandHandler(),
		time.Duration(ttlMinutes)*time.Minute,
		c.orderMetrics,
		c.logger,
	), nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
