package queries

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler retrieves an order's audit trail from the
// database.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the query and returns the order's status history sorted
// newest first. Returns an ObjectNotFoundError if no order exists with the
// given ID.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]OrderHistoryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.ensureOrderExists(ctx, query.OrderID()); err != nil {
		return nil, err
	}

	return loadHistory(ctx, h.db, query.OrderID())
}

func (h GetOrderHistoryQueryHandler) ensureOrderExists(ctx context.Context, orderID kernel.UUID) error {
	var count int64
	row := h.db.WithContext(ctx).Raw(`
		SELECT count(*)
		FROM orders
		WHERE id = ? AND deleted_at IS NULL
	`, orderID.String()).Row()
	if err := row.Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("orderID", orderID)
	}
	return nil
}
