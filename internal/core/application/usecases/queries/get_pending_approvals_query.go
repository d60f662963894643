package queries

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPendingApprovalsQueryIsNotConstructed = errors.New(
	"GetPendingApprovalsQuery must be created via NewGetPendingApprovalsQuery constructor",
)

// GetPendingApprovalsQuery retrieves all undecided approval records across
// orders waiting in the approval workflow. Used by approvers to see their
// queue and by the reminder job.
type GetPendingApprovalsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingApprovalsQuery creates a query for the pending approval queue.
// This is a parameterless query.
func NewGetPendingApprovalsQuery() GetPendingApprovalsQuery {
	return GetPendingApprovalsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingApprovalsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingApprovalsQueryIsNotConstructed)
}

// PendingApprovalResponse is one undecided approval record joined with its
// order. WaitingSince is the order's submission time.
type PendingApprovalResponse struct {
	ApprovalID   kernel.UUID
	OrderID      kernel.UUID
	OrderNumber  string
	Level        string
	TotalAmount  decimal.Decimal
	WaitingSince time.Time
}
