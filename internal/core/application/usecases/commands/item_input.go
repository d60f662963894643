package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ItemInput carries one order line supplied by a caller.
// Validation happens when the enclosing command is constructed.
type ItemInput struct {
	ProductName string
	Description string
	UnitPrice   decimal.Decimal
	Quantity    int
}

// buildItems converts caller-supplied item inputs into validated domain items.
// Fails if the list is empty or any line violates the item invariants;
// all line errors are joined so callers see every problem at once.
func buildItems(inputs []ItemInput) ([]*order.Item, error) {
	if len(inputs) == 0 {
		return nil, errs.NewValueIsRequiredError("order must have at least one item")
	}

	items := make([]*order.Item, 0, len(inputs))
	var itemErrs []error
	for _, input := range inputs {
		item, err := order.NewItem(input.ProductName, input.Description, input.UnitPrice, input.Quantity)
		if err != nil {
			itemErrs = append(itemErrs, err)
			continue
		}
		items = append(items, item)
	}

	if err := errors.Join(itemErrs...); err != nil {
		return nil, err
	}
	return items, nil
}

// normalizeActor maps an absent actor identity to the system sentinel.
func normalizeActor(changedBy string) string {
	if changedBy == "" {
		return order.SystemActor
	}
	return changedBy
}
