package queries

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// GetOrdersQuery retrieves a page of orders, newest first, optionally
// filtered by status.
//
// Example:
//
//	query, err := NewGetOrdersQuery(1, 20, "pending_approval")
//	if err != nil {
//	    return err
//	}
//
//	page, err := NewGetOrdersQueryHandler(db).Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d of %d orders\n", len(page.Orders), page.Total)
type GetOrdersQuery struct {
	page    int
	perPage int
	status  string

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for a page of the order list.
// Page defaults to 1 and perPage to 10; perPage is capped at 100. A
// non-empty status must be one of the order lifecycle statuses.
func NewGetOrdersQuery(page, perPage int, status string) (GetOrdersQuery, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		return GetOrdersQuery{}, errs.NewValueIsInvalidError("perPage")
	}

	if status != "" {
		if _, err := order.StatusFromString(status); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		page:    page,
		perPage: perPage,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q GetOrdersQuery) Page() int {
	return q.page
}

// PerPage returns the page size.
func (q GetOrdersQuery) PerPage() int {
	return q.perPage
}

// Status returns the status filter, empty when unfiltered.
func (q GetOrdersQuery) Status() string {
	return q.status
}

// OrderSummaryResponse is one order in the list read model.
// Line items and approvals are not included; use GetOrderQuery for those.
type OrderSummaryResponse struct {
	ID          kernel.UUID
	Number      string
	Status      string
	Notes       string
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GetOrdersQueryResponse is one page of the order list plus paging metadata.
type GetOrdersQueryResponse struct {
	Orders  []OrderSummaryResponse
	Total   int64
	Page    int
	PerPage int
}
