package queries

import (
	"context"
	"database/sql"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model from the database.
// Reads bypass the aggregate and load the rows directly.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order with its items, approval
// records and status history. The history is sorted newest first.
// Returns an ObjectNotFoundError if no order exists with the given ID.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.Items, err = h.loadItems(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Approvals, err = h.loadApprovals(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.History, err = loadHistory(ctx, h.db, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadOrder(ctx context.Context, orderID kernel.UUID) (GetOrderQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			status,
			notes,
			total_amount,
			created_at,
			updated_at
		FROM orders
		WHERE id = ? AND deleted_at IS NULL
	`, orderID.String()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", orderID)
	}

	var resp GetOrderQueryResponse
	var id uuid.UUID
	err = rows.Scan(
		&id,
		&resp.Number,
		&resp.Status,
		&resp.Notes,
		&resp.TotalAmount,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	return resp, rows.Err()
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_name,
			description,
			unit_price,
			quantity,
			subtotal
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var item OrderItemResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&item.ProductName,
			&item.Description,
			&item.UnitPrice,
			&item.Quantity,
			&item.Subtotal,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (h GetOrderQueryHandler) loadApprovals(ctx context.Context, orderID kernel.UUID) ([]OrderApprovalResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			level,
			status,
			approved_by,
			notes,
			approved_at
		FROM order_approvals
		WHERE order_id = ?
		ORDER BY level
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	approvals := make([]OrderApprovalResponse, 0)
	for rows.Next() {
		var approval OrderApprovalResponse
		var id uuid.UUID
		var approvedAt sql.NullTime

		err = rows.Scan(
			&id,
			&approval.Level,
			&approval.Status,
			&approval.ApprovedBy,
			&approval.Notes,
			&approvedAt,
		)
		if err != nil {
			return nil, err
		}

		if approval.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if approvedAt.Valid {
			at := approvedAt.Time
			approval.ApprovedAt = &at
		}
		approvals = append(approvals, approval)
	}
	return approvals, rows.Err()
}

// loadHistory loads an order's audit trail sorted newest first.
// Shared with the history query handler.
func loadHistory(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]OrderHistoryResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			notes,
			changed_by,
			created_at
		FROM order_status_histories
		WHERE order_id = ?
		ORDER BY created_at DESC, seq DESC
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]OrderHistoryResponse, 0)
	for rows.Next() {
		var entry OrderHistoryResponse
		var id uuid.UUID
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&entry.Status,
			&entry.Notes,
			&entry.ChangedBy,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		entry.CreatedAt = createdAt
		history = append(history, entry)
	}
	return history, rows.Err()
}
