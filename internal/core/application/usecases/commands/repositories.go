// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"orderflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// NumberSequenceFactory provides access to the order number sequence within a transaction.
	NumberSequenceFactory interface {
		NumberSequence() ports.NumberSequence
	}

	// OrderUoW manages transactions for operations on existing orders.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// NumberedOrderUoW manages transactions for order creation, which also
	// needs a number allocated inside the same transaction so concurrent
	// creations cannot produce duplicate numbers.
	NumberedOrderUoW interface {
		TxManager
		OrderRepoFactory
		NumberSequenceFactory
	}

	// NumberedOrderUoWFactory creates new numbered order unit of work instances.
	NumberedOrderUoWFactory interface {
		Create() NumberedOrderUoW
	}
)
