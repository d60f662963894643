package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations persist the whole aggregate: the order row, its items
// (replaced wholesale), its approval records (replaced wholesale per cycle)
// and its append-only status history.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	// A duplicate order number surfaces as a UniquenessViolationError.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Items and approvals are written wholesale; history entries are only
	// ever inserted, never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, fully
	// loaded with items, approvals and history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// NumberSequence allocates order numbers. Next must be atomic with respect
// to concurrent callers: two transactions may never observe the same value.
// Implementations bind the allocation to the enclosing transaction so a
// rolled back creation does not burn a number observable as a gap in
// committed data.
type NumberSequence interface {
	// Next returns the next order number in the sequence, starting at
	// "ORD000001" on first use.
	Next(ctx context.Context) (order.Number, error)
}
