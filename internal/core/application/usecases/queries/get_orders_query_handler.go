package queries

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves pages of the order list from the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query and returns one page of orders sorted newest
// first, together with the total row count for the active filter.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	resp := GetOrdersQueryResponse{
		Orders:  make([]OrderSummaryResponse, 0),
		Page:    query.Page(),
		PerPage: query.PerPage(),
	}

	statusFilter := query.Status()

	countRow := h.db.WithContext(ctx).Raw(`
		SELECT count(*)
		FROM orders
		WHERE deleted_at IS NULL
		  AND (? = '' OR status = ?)
	`, statusFilter, statusFilter).Row()
	if err := countRow.Scan(&resp.Total); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.PerPage()
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
		WHERE deleted_at IS NULL
		  AND (? = '' OR status = ?)
		ORDER BY created_at DESC, number DESC
		LIMIT ? OFFSET ?
	`, statusFilter, statusFilter, query.PerPage(), offset).Rows()
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary OrderSummaryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&summary.Number,
			&summary.Status,
			&summary.Notes,
			&summary.TotalAmount,
			&summary.CreatedAt,
			&summary.UpdatedAt,
		)
		if err != nil {
			return GetOrdersQueryResponse{}, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetOrdersQueryResponse{}, err
		}
		resp.Orders = append(resp.Orders, summary)
	}

	if err = rows.Err(); err != nil {
		return GetOrdersQueryResponse{}, err
	}
	return resp, nil
}
