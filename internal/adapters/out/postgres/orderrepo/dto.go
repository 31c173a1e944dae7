// Package orderrepo implements the order repository, including the atomic
// claim update that closes the double-assignment race. DTOs map the order
// aggregate and its line items onto the orders and order_items tables.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database representation of an order aggregate.
// The partial unique indexes on customer_id and driver_id (created in the
// migrations, not expressible in tags) are what make the one-active-order
// rules hold under concurrent writes.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;index"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;index"`
	DriverID     *uuid.UUID `gorm:"type:uuid;index"`
	Address      string
	TotalCents   int64
	Status       int `gorm:"index"`
	CreatedAt    time.Time
	PickedAt     *time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one persisted line item with its immutable price snapshot.
type OrderItemDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	MealID        uuid.UUID `gorm:"type:uuid"`
	Quantity      int
	SubTotalCents int64
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := o.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	items := o.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:       o.ID().Bytes(),
			MealID:        item.MealID().Bytes(),
			Quantity:      item.Quantity(),
			SubTotalCents: item.SubTotal().Cents(),
		})
	}

	return OrderDTO{
		ID:           o.ID().Bytes(),
		CustomerID:   o.CustomerID().Bytes(),
		RestaurantID: o.RestaurantID().Bytes(),
		DriverID:     driverID,
		Address:      o.Address(),
		TotalCents:   o.Total().Cents(),
		Status:       int(o.Status()),
		CreatedAt:    o.CreatedAt(),
		PickedAt:     o.PickedAt(),
		Items:        itemDTOs,
	}
}

// toDomain converts a database DTO back to an order aggregate, re-validating
// every invariant on the way in.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		mealID, mealErr := kernel.UUIDFromBytes(itemDTO.MealID[:])
		if mealErr != nil {
			return nil, mealErr
		}

		subTotal, moneyErr := kernel.NewMoneyFromCents(itemDTO.SubTotalCents)
		if moneyErr != nil {
			return nil, moneyErr
		}

		item, itemErr := order.RestoreLineItem(mealID, itemDTO.Quantity, subTotal)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoneyFromCents(dto.TotalCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		restaurantID,
		dto.Address,
		items,
		total,
		order.Status(dto.Status),
		driverID,
		dto.CreatedAt,
		dto.PickedAt,
	)
}
