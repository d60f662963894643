package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when a CreateOrderCommand
// bypassed its constructor.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new draft order.
// Encapsulates the order notes, its line items and the acting identity.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	notes     string
	items     []*order.Item
	changedBy string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order ID is valid and that at least one well-formed
// item is supplied. An empty actor identity defaults to the system sentinel.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	notes string,
	items []ItemInput,
	changedBy string,
) (CreateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}

	domainItems, err := buildItems(items)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		orderID:   orderID,
		notes:     notes,
		items:     domainItems,
		changedBy: normalizeActor(changedBy),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created with.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Notes returns the order's free-text notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// Items returns the validated order lines.
func (c CreateOrderCommand) Items() []*order.Item {
	return c.items
}

// ChangedBy returns the acting identity recorded in the status history.
func (c CreateOrderCommand) ChangedBy() string {
	return c.changedBy
}
