package commands_test

import (
	"context"
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testItemInputs(prices ...float64) []commands.ItemInput {
	inputs := make([]commands.ItemInput, 0, len(prices))
	for _, price := range prices {
		inputs = append(inputs, commands.ItemInput{
			ProductName: "Widget",
			UnitPrice:   decimal.NewFromFloat(price),
			Quantity:    1,
		})
	}
	return inputs
}

func itemTotal(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount)
}

func storedOrder(t *testing.T, prices ...float64) *order.Order {
	t.Helper()
	items := make([]*order.Item, 0, len(prices))
	for _, price := range prices {
		item, err := order.NewItem("Widget", "", decimal.NewFromFloat(price), 1)
		require.NoError(t, err)
		items = append(items, item)
	}
	number, err := order.NumberFromSequence(1)
	require.NoError(t, err)
	aggregate, err := order.NewOrder(kernel.NewUUID(), number, "", items, "alice")
	require.NoError(t, err)
	return aggregate
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockNumberSequence struct{ mock.Mock }

func (m *MockNumberSequence) Next(ctx context.Context) (order.Number, error) {
	args := m.Called(ctx)
	return args.Get(0).(order.Number), args.Error(1)
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

type MockNumberedOrderUoW struct{ mock.Mock }

func (m *MockNumberedOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNumberedOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNumberedOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNumberedOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockNumberedOrderUoW) NumberSequence() ports.NumberSequence {
	args := m.Called()
	return args.Get(0).(ports.NumberSequence)
}

type MockNumberedOrderUoWFactory struct{ mock.Mock }

func (m *MockNumberedOrderUoWFactory) Create() commands.NumberedOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.NumberedOrderUoW)
}
