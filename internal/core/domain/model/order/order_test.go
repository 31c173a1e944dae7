package order_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromCents(cents)
	require.NoError(t, err)
	return m
}

func lineItems(t *testing.T) []order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), 2, money(t, 1000))
	require.NoError(t, err)
	return []order.LineItem{item}
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in Cooking status with computed total", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		restaurantID := kernel.NewUUID()
		createdAt := time.Now()

		o, err := order.NewOrder(id, customerID, restaurantID, "221B Baker Street",
			lineItems(t), createdAt)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.True(t, o.RestaurantID().IsEqual(restaurantID))
		assert.Equal(t, "221B Baker Street", o.Address())
		assert.Equal(t, order.Cooking, o.Status())
		assert.Nil(t, o.Driver())
		assert.Nil(t, o.PickedAt())
		assert.Equal(t, createdAt, o.CreatedAt())
		// price 1000 cents x quantity 2
		assert.Equal(t, int64(2000), o.Total().Cents())
	})

	t.Run("should compute total as sum of sub-totals across items", func(t *testing.T) {
		itemA, err := order.NewLineItem(kernel.NewUUID(), 2, money(t, 1000))
		require.NoError(t, err)
		itemB, err := order.NewLineItem(kernel.NewUUID(), 3, money(t, 250))
		require.NoError(t, err)

		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Main St 1", []order.LineItem{itemA, itemB}, time.Now())

		require.NoError(t, err)
		assert.Equal(t, int64(2750), o.Total().Cents())

		var sum int64
		for _, item := range o.Items() {
			sum += item.SubTotal().Cents()
		}
		assert.Equal(t, o.Total().Cents(), sum)
	})

	t.Run("should reject empty address", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"", lineItems(t), time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "address")
	})

	t.Run("should reject empty item list", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Main St 1", nil, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "order items")
	})

	t.Run("should reject zero identifiers", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
			"Main St 1", lineItems(t), time.Now())
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(),
			"Main St 1", lineItems(t), time.Now())
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{},
			"Main St 1", lineItems(t), time.Now())
		require.Error(t, err)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("should walk the full lifecycle", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Main St 1", lineItems(t), time.Now())
		require.NoError(t, err)

		require.NoError(t, o.MarkReady())
		assert.Equal(t, order.Ready, o.Status())
		assert.Nil(t, o.Driver())

		driverID := kernel.NewUUID()
		pickedAt := time.Now()
		require.NoError(t, o.Pick(driverID, pickedAt))
		assert.Equal(t, order.OnTheWay, o.Status())
		require.NotNil(t, o.Driver())
		assert.True(t, o.Driver().IsEqual(driverID))
		require.NotNil(t, o.PickedAt())
		assert.Equal(t, pickedAt, *o.PickedAt())

		require.NoError(t, o.Complete())
		assert.Equal(t, order.Delivered, o.Status())
		assert.True(t, o.Driver().IsEqual(driverID))
	})

	t.Run("should reject picking an order that is not ready", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Main St 1", lineItems(t), time.Now())
		require.NoError(t, err)

		err = o.Pick(kernel.NewUUID(), time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Cooking, o.Status())
		assert.Nil(t, o.Driver())
	})

	t.Run("should reject picking with a zero driver ID", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Main St 1", lineItems(t), time.Now())
		require.NoError(t, err)
		require.NoError(t, o.MarkReady())

		err = o.Pick(kernel.UUID{}, time.Now())
		require.Error(t, err)
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("should reject completing an order that is not on the way", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Main St 1", lineItems(t), time.Now())
		require.NoError(t, err)

		require.ErrorIs(t, o.Complete(), errs.ErrValueIsInvalid)

		require.NoError(t, o.MarkReady())
		require.ErrorIs(t, o.Complete(), errs.ErrValueIsInvalid)
	})

	t.Run("should reject double completion", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Main St 1", lineItems(t), time.Now())
		require.NoError(t, err)
		require.NoError(t, o.MarkReady())
		require.NoError(t, o.Pick(kernel.NewUUID(), time.Now()))
		require.NoError(t, o.Complete())

		require.Error(t, o.Complete())
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore a claimed order", func(t *testing.T) {
		items := lineItems(t)
		driverID := kernel.NewUUID()
		pickedAt := time.Now()

		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Main St 1", items, money(t, 2000), order.OnTheWay, &driverID, time.Now(), &pickedAt)

		require.NoError(t, err)
		assert.Equal(t, order.OnTheWay, o.Status())
		require.NotNil(t, o.Driver())
		assert.True(t, o.Driver().IsEqual(driverID))
	})

	t.Run("should reject total that does not match the items", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Main St 1", lineItems(t), money(t, 9999), order.Cooking, nil, time.Now(), nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "total does not match sum of line item sub-totals")
	})

	t.Run("should reject a driver on a pre-claim status", func(t *testing.T) {
		driverID := kernel.NewUUID()

		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Main St 1", lineItems(t), money(t, 2000), order.Cooking, &driverID, time.Now(), nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a claimed status with no driver", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Main St 1", lineItems(t), money(t, 2000), order.OnTheWay, nil, time.Now(), nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Main St 1", lineItems(t), money(t, 2000), order.Unknown, nil, time.Now(), nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject a zero-value order", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should accept a constructed order", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Main St 1", lineItems(t), time.Now())
		require.NoError(t, err)
		require.NoError(t, o.Validate())
	})
}

func TestOrder_Items(t *testing.T) {
	t.Run("should return a copy of the item slice", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Main St 1", lineItems(t), time.Now())
		require.NoError(t, err)

		first := o.Items()
		second := o.Items()
		require.Len(t, first, 1)
		first[0] = order.LineItem{}

		assert.NotEqual(t, first[0], second[0])
		assert.Equal(t, int64(2000), o.Items()[0].SubTotal().Cents())
	})
}
