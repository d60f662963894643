package queries

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingApprovalsQueryHandler retrieves the pending approval queue from
// the database.
type GetPendingApprovalsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingApprovalsQueryHandler creates a handler for pending approval
// queue queries. Requires a GORM database connection for query execution.
func NewGetPendingApprovalsQueryHandler(db *gorm.DB) GetPendingApprovalsQueryHandler {
	return GetPendingApprovalsQueryHandler{db: db}
}

// Handle executes the query and returns every undecided approval record on
// orders still pending approval, longest waiting first.
func (h GetPendingApprovalsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingApprovalsQuery,
) ([]PendingApprovalResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			o.id,
			o.number,
			a.level,
			o.total_amount,
			o.updated_at
		FROM order_approvals a
		JOIN orders o ON o.id = a.order_id
		WHERE a.status = ?
		  AND o.status = ?
		  AND o.deleted_at IS NULL
		ORDER BY o.updated_at, a.level
	`, order.ApprovalPending, order.StatusPendingApproval).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pending := make([]PendingApprovalResponse, 0)
	for rows.Next() {
		var resp PendingApprovalResponse
		var approvalID, orderID uuid.UUID

		err = rows.Scan(
			&approvalID,
			&orderID,
			&resp.OrderNumber,
			&resp.Level,
			&resp.TotalAmount,
			&resp.WaitingSince,
		)
		if err != nil {
			return nil, err
		}

		if resp.ApprovalID, err = kernel.UUIDFromBytes(approvalID[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		pending = append(pending, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return pending, nil
}
