package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Allocates the order number and persists the aggregate inside one
// transaction, so concurrent creations can never share a number.
type CreateOrderCommandHandler struct {
	uowFactory NumberedOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a NumberedOrderUoWFactory for transactional persistence and
// number allocation.
func NewCreateOrderCommandHandler(uowFactory NumberedOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the created
// aggregate in draft status. All writes are rolled back if any step fails.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	number, err := uow.NumberSequence().Next(ctx)
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), number, cmd.Notes(), cmd.Items(), cmd.ChangedBy())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
