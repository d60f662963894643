package http

import (
	"orderflow/internal/core/application/usecases/commands"

	"github.com/shopspring/decimal"
)

// ItemRequest is one order line in a create or update request body.
type ItemRequest struct {
	ProductName string          `json:"product_name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	Notes string        `json:"notes"`
	Items []ItemRequest `json:"items"`
}

// UpdateOrderRequest is the body of PUT /api/v1/orders/:id.
// The items replace the order's current lines wholesale.
type UpdateOrderRequest struct {
	Notes string        `json:"notes"`
	Items []ItemRequest `json:"items"`
}

// ApprovalRequest is the body of POST /api/v1/orders/:id/approve.
type ApprovalRequest struct {
	Level    string `json:"level"`
	Decision string `json:"decision"`
	Notes    string `json:"notes"`
}

func toItemInputs(items []ItemRequest) []commands.ItemInput {
	inputs := make([]commands.ItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, commands.ItemInput{
			ProductName: item.ProductName,
			Description: item.Description,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}
	return inputs
}
