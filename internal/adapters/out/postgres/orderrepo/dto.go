// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and creation time.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerEmail string
	Status        int       `gorm:"index"`
	CreatedAt     time.Time `gorm:"index"`
	ConfirmedAt   *time.Time
	Items         []LineItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents a single priced line of an order in the database.
// Product identity is unique per order, so the composite key mirrors the
// aggregate's merge-by-product invariant.
type LineItemDTO struct {
	OrderID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID       string    `gorm:"primaryKey"`
	ProductName     string
	UnitPriceAmount int64
	Currency        string
	Quantity        int
}

// TableName specifies the database table name for order line items.
func (LineItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional confirmation timestamp.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]LineItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, LineItemDTO{
			OrderID:         orderID,
			ProductID:       item.ProductID(),
			ProductName:     item.ProductName(),
			UnitPriceAmount: item.UnitPrice().Amount(),
			Currency:        string(item.UnitPrice().Currency()),
			Quantity:        item.Quantity(),
		})
	}

	return OrderDTO{
		ID:            orderID,
		CustomerEmail: aggregate.CustomerEmail().String(),
		Status:        int(aggregate.Status()),
		CreatedAt:     aggregate.CreatedAt(),
		ConfirmedAt:   aggregate.ConfirmedAt(),
		Items:         items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items and the
// confirmation timestamp using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.CustomerEmail)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		unitPrice, priceErr := kernel.NewMoney(itemDTO.UnitPriceAmount, kernel.Currency(itemDTO.Currency))
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.NewLineItem(
			itemDTO.ProductID, itemDTO.ProductName, unitPrice, itemDTO.Quantity,
		)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return order.RestoreOrder(
		id, email, items, order.Status(dto.Status), dto.CreatedAt, dto.ConfirmedAt,
	)
}
