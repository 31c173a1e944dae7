package order_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	t.Run("should snapshot price x quantity into the sub-total", func(t *testing.T) {
		mealID := kernel.NewUUID()

		item, err := order.NewLineItem(mealID, 2, money(t, 1000))

		require.NoError(t, err)
		assert.True(t, item.MealID().IsEqual(mealID))
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, int64(2000), item.SubTotal().Cents())
		require.NoError(t, item.Validate())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1, -100} {
			_, err := order.NewLineItem(kernel.NewUUID(), quantity, money(t, 1000))
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject a zero meal ID", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.UUID{}, 1, money(t, 1000))
		require.Error(t, err)
	})

	t.Run("should allow a free meal", func(t *testing.T) {
		item, err := order.NewLineItem(kernel.NewUUID(), 3, money(t, 0))

		require.NoError(t, err)
		assert.Equal(t, int64(0), item.SubTotal().Cents())
	})
}

func TestRestoreLineItem(t *testing.T) {
	t.Run("should restore the stored sub-total without recomputing", func(t *testing.T) {
		mealID := kernel.NewUUID()

		item, err := order.RestoreLineItem(mealID, 2, money(t, 1500))

		require.NoError(t, err)
		assert.Equal(t, int64(1500), item.SubTotal().Cents())
		require.NoError(t, item.Validate())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		_, err := order.RestoreLineItem(kernel.NewUUID(), 0, money(t, 1000))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestLineItem_Validate(t *testing.T) {
	t.Run("should reject the zero value", func(t *testing.T) {
		var item order.LineItem
		require.ErrorIs(t, item.Validate(), order.ErrLineItemIsNotConstructed)
	})
}
