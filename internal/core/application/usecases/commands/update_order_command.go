package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/guard"
)

// ErrUpdateOrderCommandIsNotConstructed is returned when an UpdateOrderCommand
// bypassed its constructor.
var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to change an order's notes and
// replace its items wholesale.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	notes     string
	items     []*order.Item
	changedBy string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an existing order.
// Validates the order ID and the replacement item set. An empty actor
// identity defaults to the system sentinel.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	notes string,
	items []ItemInput,
	changedBy string,
) (UpdateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}

	domainItems, err := buildItems(items)
	if err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		orderID:   orderID,
		notes:     notes,
		items:     domainItems,
		changedBy: normalizeActor(changedBy),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Notes returns the new free-text notes.
func (c UpdateOrderCommand) Notes() string {
	return c.notes
}

// Items returns the validated replacement order lines.
func (c UpdateOrderCommand) Items() []*order.Item {
	return c.items
}

// ChangedBy returns the acting identity recorded in the status history.
func (c UpdateOrderCommand) ChangedBy() string {
	return c.changedBy
}
