package kernel_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromCents(t *testing.T) {
	t.Run("positive amount", func(t *testing.T) {
		m, err := kernel.NewMoneyFromCents(1050)

		require.NoError(t, err)
		assert.Equal(t, int64(1050), m.Cents())
		assert.Equal(t, "10.50", m.String())
	})

	t.Run("zero is valid", func(t *testing.T) {
		m, err := kernel.NewMoneyFromCents(0)

		require.NoError(t, err)
		assert.Equal(t, "0.00", m.String())
	})

	t.Run("negative amount is invalid", func(t *testing.T) {
		_, err := kernel.NewMoneyFromCents(-1)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Add(t *testing.T) {
	a, _ := kernel.NewMoneyFromCents(1000)
	b, _ := kernel.NewMoneyFromCents(250)

	sum := a.Add(b)

	assert.Equal(t, int64(1250), sum.Cents())
	assert.Equal(t, int64(1000), a.Cents())
}

func TestMoney_MultiplyByQuantity(t *testing.T) {
	price, _ := kernel.NewMoneyFromCents(1000)

	t.Run("scales by quantity", func(t *testing.T) {
		subTotal, err := price.MultiplyByQuantity(2)

		require.NoError(t, err)
		assert.Equal(t, int64(2000), subTotal.Cents())
	})

	t.Run("zero quantity is invalid", func(t *testing.T) {
		_, err := price.MultiplyByQuantity(0)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative quantity is invalid", func(t *testing.T) {
		_, err := price.MultiplyByQuantity(-3)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_IsEqual(t *testing.T) {
	a, _ := kernel.NewMoneyFromCents(500)
	b, _ := kernel.NewMoneyFromCents(500)
	c, _ := kernel.NewMoneyFromCents(501)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
