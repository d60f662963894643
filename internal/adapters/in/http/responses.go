package http

import (
	"time"

	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemResponse is one order line in a response body.
type ItemResponse struct {
	ID          string          `json:"id"`
	ProductName string          `json:"product_name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// ApprovalResponse is one approval record in a response body.
type ApprovalResponse struct {
	ID         string     `json:"id"`
	Level      string     `json:"level"`
	Status     string     `json:"status"`
	ApprovedBy string     `json:"approved_by,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
}

// HistoryResponse is one audit trail entry in a response body.
type HistoryResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	ChangedBy string    `json:"changed_by"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderResponse is the full order representation returned by the command
// endpoints and GET /api/v1/orders/:id.
type OrderResponse struct {
	ID          string             `json:"id"`
	Number      string             `json:"number"`
	Status      string             `json:"status"`
	Notes       string             `json:"notes"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	Items       []ItemResponse     `json:"items"`
	Approvals   []ApprovalResponse `json:"approvals"`
	History     []HistoryResponse  `json:"history,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// OrderSummary is one order in the paginated list response.
type OrderSummary struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`
	Status      string          `json:"status"`
	Notes       string          `json:"notes"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// OrderListResponse is the body of GET /api/v1/orders.
type OrderListResponse struct {
	Orders  []OrderSummary `json:"orders"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
}

// PendingApprovalItem is one entry of GET /api/v1/pending-approvals.
type PendingApprovalItem struct {
	ApprovalID   string          `json:"approval_id"`
	OrderID      string          `json:"order_id"`
	OrderNumber  string          `json:"order_number"`
	Level        string          `json:"level"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	WaitingSince time.Time       `json:"waiting_since"`
}

// orderResponseFromAggregate maps a domain aggregate to its API
// representation, history included.
func orderResponseFromAggregate(aggregate *order.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemResponse{
			ID:          item.ID().String(),
			ProductName: item.ProductName(),
			Description: item.Description(),
			UnitPrice:   item.UnitPrice(),
			Quantity:    item.Quantity(),
			Subtotal:    item.Subtotal(),
		})
	}

	approvals := make([]ApprovalResponse, 0, len(aggregate.Approvals()))
	for _, approval := range aggregate.Approvals() {
		approvals = append(approvals, ApprovalResponse{
			ID:         approval.ID().String(),
			Level:      approval.Level().String(),
			Status:     approval.Status().String(),
			ApprovedBy: approval.ApprovedBy(),
			Notes:      approval.Notes(),
			ApprovedAt: approval.ApprovedAt(),
		})
	}

	history := make([]HistoryResponse, 0, len(aggregate.History()))
	for _, entry := range aggregate.History() {
		history = append(history, HistoryResponse{
			ID:        entry.ID().String(),
			Status:    entry.Status().String(),
			Notes:     entry.Notes(),
			ChangedBy: entry.ChangedBy(),
			CreatedAt: entry.CreatedAt(),
		})
	}

	return OrderResponse{
		ID:          aggregate.ID().String(),
		Number:      aggregate.Number().String(),
		Status:      aggregate.Status().String(),
		Notes:       aggregate.Notes(),
		TotalAmount: aggregate.TotalAmount(),
		Items:       items,
		Approvals:   approvals,
		History:     history,
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// orderResponseFromReadModel maps the read-side order model to its API
// representation.
func orderResponseFromReadModel(model queries.GetOrderQueryResponse) OrderResponse {
	items := make([]ItemResponse, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, ItemResponse{
			ID:          item.ID.String(),
			ProductName: item.ProductName,
			Description: item.Description,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
		})
	}

	approvals := make([]ApprovalResponse, 0, len(model.Approvals))
	for _, approval := range model.Approvals {
		approvals = append(approvals, ApprovalResponse{
			ID:         approval.ID.String(),
			Level:      approval.Level,
			Status:     approval.Status,
			ApprovedBy: approval.ApprovedBy,
			Notes:      approval.Notes,
			ApprovedAt: approval.ApprovedAt,
		})
	}

	return OrderResponse{
		ID:          model.ID.String(),
		Number:      model.Number,
		Status:      model.Status,
		Notes:       model.Notes,
		TotalAmount: model.TotalAmount,
		Items:       items,
		Approvals:   approvals,
		History:     historyResponses(model.History),
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func historyResponses(entries []queries.OrderHistoryResponse) []HistoryResponse {
	history := make([]HistoryResponse, 0, len(entries))
	for _, entry := range entries {
		history = append(history, HistoryResponse{
			ID:        entry.ID.String(),
			Status:    entry.Status,
			Notes:     entry.Notes,
			ChangedBy: entry.ChangedBy,
			CreatedAt: entry.CreatedAt,
		})
	}
	return history
}
