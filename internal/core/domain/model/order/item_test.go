package order_test

import (
	"testing"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create valid item and derive subtotal", func(t *testing.T) {
		price := decimal.RequireFromString("19.99")

		item, err := order.NewItem("Widget", "a widget", price, 3)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Widget", item.ProductName())
		assert.Equal(t, "a widget", item.Description())
		assert.True(t, item.UnitPrice().Equal(price))
		assert.Equal(t, 3, item.Quantity())
		assert.True(t, item.Subtotal().Equal(decimal.RequireFromString("59.97")),
			"subtotal is %s", item.Subtotal())
		require.NoError(t, item.ID().Validate())
	})

	t.Run("subtotal keeps full decimal precision", func(t *testing.T) {
		price := decimal.RequireFromString("0.07")

		item, err := order.NewItem("Screw", "", price, 7)

		require.NoError(t, err)
		assert.Equal(t, "0.49", item.Subtotal().String())
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		item, err := order.NewItem("Sample", "", decimal.Zero, 1)

		require.NoError(t, err)
		assert.True(t, item.Subtotal().IsZero())
	})

	t.Run("should fail with empty product name", func(t *testing.T) {
		_, err := order.NewItem("", "", decimal.NewFromInt(10), 1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with negative unit price", func(t *testing.T) {
		_, err := order.NewItem("Widget", "", decimal.NewFromInt(-1), 1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewItem("Widget", "", decimal.NewFromInt(10), 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		_, err := order.NewItem("", "", decimal.NewFromInt(-1), -2)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "productName")
		assert.Contains(t, err.Error(), "unitPrice")
		assert.Contains(t, err.Error(), "quantity")
	})
}

func TestRestoreItem(t *testing.T) {
	t.Run("keeps the stored identity", func(t *testing.T) {
		id := kernel.NewUUID()

		item, err := order.RestoreItem(id, "Widget", "", decimal.NewFromInt(5), 2)

		require.NoError(t, err)
		assert.True(t, item.ID().IsEqual(id))
		assert.Equal(t, "10", item.Subtotal().String())
	})

	t.Run("fails with zero-value id", func(t *testing.T) {
		var id kernel.UUID

		_, err := order.RestoreItem(id, "Widget", "", decimal.NewFromInt(5), 2)

		require.Error(t, err)
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var item order.Item

		require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})

	t.Run("nil item fails validation", func(t *testing.T) {
		var item *order.Item

		require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}
