package order

import (
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line of an order: a product with a unit price and a quantity.
// Items are exclusively owned by their order and replaced wholesale whenever
// the order is updated.
//
// Item maintains these invariants:
//   - Product name is never empty
//   - Unit price is never negative
//   - Quantity is always positive
//   - Subtotal always equals unit price times quantity
//
// The subtotal is derived at construction and never independently settable.
type Item struct {
	id          kernel.UUID
	productName string
	description string
	unitPrice   decimal.Decimal
	quantity    int
	subtotal    decimal.Decimal

	isConstructed bool
}

// NewItem creates a validated order item with a fresh identity.
// The subtotal is computed as unitPrice * quantity at full decimal precision.
func NewItem(productName, description string, unitPrice decimal.Decimal, quantity int) (*Item, error) {
	item := &Item{
		id:            kernel.NewUUID(),
		isConstructed: true,
	}

	if err := errors.Join(
		item.setProductName(productName),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	item.description = description
	item.subtotal = item.unitPrice.Mul(decimal.NewFromInt(int64(item.quantity)))
	return item, nil
}

// RestoreItem reconstructs an item from persistence, recomputing the subtotal
// so a drifted stored value can never survive a load/save cycle.
func RestoreItem(
	id kernel.UUID,
	productName, description string,
	unitPrice decimal.Decimal,
	quantity int,
) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	item, err := NewItem(productName, description, unitPrice, quantity)
	if err != nil {
		return nil, err
	}

	item.id = id
	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductName returns the name of the ordered product.
func (i *Item) ProductName() string {
	return i.productName
}

// Description returns the optional product description, empty when absent.
func (i *Item) Description() string {
	return i.description
}

// UnitPrice returns the price of a single unit.
func (i *Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Quantity returns the number of units ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// Subtotal returns the derived line total, unit price times quantity.
func (i *Item) Subtotal() decimal.Decimal {
	return i.subtotal
}

func (i *Item) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = productName
	return nil
}

func (i *Item) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
