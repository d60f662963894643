// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its items, approval records and
// status history.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order's full read model.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemResponse is one order line in the read model.
type OrderItemResponse struct {
	ID          kernel.UUID
	ProductName string
	Description string
	UnitPrice   decimal.Decimal
	Quantity    int
	Subtotal    decimal.Decimal
}

// OrderApprovalResponse is one approval record in the read model.
// ApprovedBy and ApprovedAt are empty until the level is decided.
type OrderApprovalResponse struct {
	ID         kernel.UUID
	Level      string
	Status     string
	ApprovedBy string
	Notes      string
	ApprovedAt *time.Time
}

// OrderHistoryResponse is one audit trail entry in the read model.
type OrderHistoryResponse struct {
	ID        kernel.UUID
	Status    string
	Notes     string
	ChangedBy string
	CreatedAt time.Time
}

// GetOrderQueryResponse is the full read model of a single order.
type GetOrderQueryResponse struct {
	ID          kernel.UUID
	Number      string
	Status      string
	Notes       string
	TotalAmount decimal.Decimal
	Items       []OrderItemResponse
	Approvals   []OrderApprovalResponse
	History     []OrderHistoryResponse
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
