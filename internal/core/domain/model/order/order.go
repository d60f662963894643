package order

import (
	"errors"
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ApprovalThreshold is the monetary total (inclusive) at and above which an
// order must pass both approval levels before it becomes approved.
var ApprovalThreshold = decimal.NewFromInt(1000)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of the order management domain. It owns its
// items, approval records and status history, and enforces the lifecycle
// rules of the two-level approval workflow.
//
// Order maintains these invariants:
//   - Has at least one item whenever persisted
//   - Total amount always equals the sum of the items' subtotals
//   - The order number is immutable once assigned
//   - Status transitions follow the approval state machine
//   - Status history only ever grows
//   - Can only be created through NewOrder or RestoreOrder
//
// All mutating methods stamp the audit trail with the acting identity;
// an empty identity is recorded as SystemActor.
type Order struct {
	id          kernel.UUID
	number      Number
	status      Status
	notes       string
	totalAmount decimal.Decimal
	items       []*Item
	approvals   []*Approval
	history     []*HistoryEntry
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewOrder creates a new draft order with the given items.
// The total amount is computed from the items' subtotals, and a "created"
// entry is appended to the status history on behalf of changedBy.
//
// Returns a validation error if the order has no items or any input is
// invalid. This is the only way (besides RestoreOrder) to create a valid
// Order, ensuring all business invariants hold from the start.
func NewOrder(id kernel.UUID, number Number, notes string, items []*Item, changedBy string) (*Order, error) {
	now := time.Now().UTC()

	order := &Order{
		status:        StatusDraft,
		notes:         notes,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	order.appendHistory(StatusDraft, "Order created", changedBy, now)
	return order, nil
}

// RestoreOrder reconstructs an order aggregate from persistence.
// The total amount is recomputed from the restored items rather than
// trusted from storage, keeping the derived-total invariant intact.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	status Status,
	notes string,
	items []*Item,
	approvals []*Approval,
	history []*HistoryEntry,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		notes:         notes,
		approvals:     approvals,
		history:       history,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	order.status = status

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Update changes the order's notes and replaces its items wholesale,
// recomputing the total amount. The status itself is left untouched: an
// order already submitted keeps its pending approval cycle (resubmitting
// replaces it). An "updated" entry is appended to the status history.
//
// Returns an InvalidStateError if the order is approved or rejected, and a
// validation error if the new item set is empty.
func (o *Order) Update(notes string, items []*Item, changedBy string) error {
	if !o.CanBeModified() {
		return errs.NewInvalidStateError("order cannot be modified after approval or rejection")
	}
	if err := o.setItems(items); err != nil {
		return err
	}

	now := time.Now().UTC()
	o.notes = notes
	o.updatedAt = now
	o.appendHistory(StatusDraft, "Order updated", changedBy, now)
	return nil
}

// SubmitForApproval moves the order into the approval workflow.
//
// Any approval records from a previous submission are discarded. If the
// total amount is at or above ApprovalThreshold, a pending record is
// created for each approval level and the order stays in pending_approval.
// Otherwise the order is immediately auto-approved.
//
// Returns an InvalidStateError if the order is approved or rejected.
func (o *Order) SubmitForApproval(changedBy string) error {
	if !o.CanBeModified() {
		return errs.NewInvalidStateError("order cannot be modified after approval or rejection")
	}

	now := time.Now().UTC()
	o.status = StatusPendingApproval
	o.updatedAt = now
	o.appendHistory(StatusPendingApproval, "Order submitted for approval", changedBy, now)

	// Supersede any approvals from a previous cycle.
	o.approvals = nil

	if o.RequiresApproval() {
		o.approvals = []*Approval{
			newPendingApproval(LevelFirst),
			newPendingApproval(LevelSecond),
		}
		return nil
	}

	o.status = StatusApproved
	o.appendHistory(StatusApproved, "Order automatically approved (no approval required)", changedBy, now)
	return nil
}

// ProcessApproval resolves one approval level with the given decision.
//
// A rejection at any level is immediately terminal: the order becomes
// rejected and the other level's record is left as is. An approval marks
// the level done; once no second-level record remains pending the order
// becomes approved. Level ordering is not enforced, so the second level
// may be decided before the first.
//
// Returns an InvalidStateError if the order is not pending approval or does
// not require approval, and an ObjectNotFoundError if no pending record
// exists at the requested level.
func (o *Order) ProcessApproval(level Level, decision ApprovalStatus, approvedBy, notes string) error {
	if err := level.Validate(); err != nil {
		return err
	}
	if err := decision.ValidateDecision(); err != nil {
		return err
	}
	if o.status != StatusPendingApproval {
		return errs.NewInvalidStateError("order is not pending approval")
	}
	if !o.RequiresApproval() {
		return errs.NewInvalidStateError("order does not require approval")
	}

	approval := o.pendingApprovalAt(level)
	if approval == nil {
		return errs.NewObjectNotFoundError("pendingApproval",
			fmt.Sprintf("no pending approval found for %s level", level))
	}

	now := time.Now().UTC()
	if err := approval.decide(decision, approvedBy, notes, now); err != nil {
		return err
	}
	o.updatedAt = now

	if decision == ApprovalRejected {
		o.status = StatusRejected
		o.appendHistory(StatusRejected,
			fmt.Sprintf("Order rejected at %s level", approval.Level()), approvedBy, now)
		return nil
	}

	if o.pendingApprovalAt(LevelSecond) == nil {
		o.status = StatusApproved
		o.appendHistory(StatusApproved, "Order fully approved", approvedBy, now)
	}
	return nil
}

// RequiresApproval reports whether the order's total is at or above the
// approval threshold.
func (o *Order) RequiresApproval() bool {
	return o.totalAmount.GreaterThanOrEqual(ApprovalThreshold)
}

// CanBeModified reports whether the order accepts updates and submissions.
// Approved and rejected orders are final and cannot be modified.
func (o *Order) CanBeModified() bool {
	return !o.status.IsTerminal()
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the order's human-readable number.
func (o *Order) Number() Number {
	return o.number
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Notes returns the order's free-text notes, empty when absent.
func (o *Order) Notes() string {
	return o.notes
}

// TotalAmount returns the derived total, the sum of the items' subtotals.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// Items returns the order's line items.
func (o *Order) Items() []*Item {
	return o.items
}

// Approvals returns the approval records of the current approval cycle.
func (o *Order) Approvals() []*Approval {
	return o.approvals
}

// History returns the order's status history in append order.
func (o *Order) History() []*HistoryEntry {
	return o.history
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last modified.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// pendingApprovalAt finds the undecided approval record at the given level.
// Returns nil if the level has no pending record.
func (o *Order) pendingApprovalAt(level Level) *Approval {
	for _, approval := range o.approvals {
		if approval.Level() == level && approval.IsPending() {
			return approval
		}
	}
	return nil
}

func (o *Order) appendHistory(status Status, notes, changedBy string, at time.Time) {
	o.history = append(o.history, newHistoryEntry(status, notes, changedBy, at))
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

// setItems replaces the item set and recomputes the total amount.
// Rejects empty item sets and items that bypassed their constructor.
func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order must have at least one item")
	}

	total := decimal.Zero
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total = total.Add(item.Subtotal())
	}

	o.items = items
	o.totalAmount = total
	return nil
}
