package driver_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDriver(t *testing.T) {
	t.Run("should create driver with no location", func(t *testing.T) {
		id := kernel.NewUUID()

		d, err := driver.NewDriver(id)

		require.NoError(t, err)
		assert.True(t, d.ID().IsEqual(id))
		assert.Nil(t, d.Location())
		require.NoError(t, d.Validate())
	})

	t.Run("should reject a zero ID", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.UUID{})
		require.Error(t, err)
	})
}

func TestRestoreDriver(t *testing.T) {
	t.Run("should restore driver with a stored location", func(t *testing.T) {
		location := "5th Avenue"

		d, err := driver.RestoreDriver(kernel.NewUUID(), &location)

		require.NoError(t, err)
		require.NotNil(t, d.Location())
		assert.Equal(t, "5th Avenue", *d.Location())
	})

	t.Run("should restore driver with no location", func(t *testing.T) {
		d, err := driver.RestoreDriver(kernel.NewUUID(), nil)

		require.NoError(t, err)
		assert.Nil(t, d.Location())
	})
}

func TestDriver_ReportLocation(t *testing.T) {
	t.Run("should overwrite the previous location", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.NewUUID())
		require.NoError(t, err)

		require.NoError(t, d.ReportLocation("5th Avenue"))
		require.NotNil(t, d.Location())
		assert.Equal(t, "5th Avenue", *d.Location())

		require.NoError(t, d.ReportLocation("Baker Street"))
		assert.Equal(t, "Baker Street", *d.Location())
	})

	t.Run("should reject an empty report", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, d.ReportLocation("5th Avenue"))

		err = d.ReportLocation("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, "5th Avenue", *d.Location())
	})
}

func TestDriver_Validate(t *testing.T) {
	t.Run("should reject nil and zero-value drivers", func(t *testing.T) {
		var nilDriver *driver.Driver
		require.ErrorIs(t, nilDriver.Validate(), driver.ErrDriverIsNotConstructed)

		var zero driver.Driver
		require.ErrorIs(t, zero.Validate(), driver.ErrDriverIsNotConstructed)
	})
}
