package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// SubmitForApprovalCommandHandler handles order submission.
// Depending on the order's total, submission either parks the order in
// pending_approval with a fresh pair of pending approval records, or
// auto-approves it outright.
type SubmitForApprovalCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSubmitForApprovalCommandHandler creates a handler for submission operations.
func NewSubmitForApprovalCommandHandler(uowFactory OrderUoWFactory) SubmitForApprovalCommandHandler {
	return SubmitForApprovalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the submission command and returns the aggregate in its
// post-submission status.
func (h *SubmitForApprovalCommandHandler) Handle(ctx context.Context, cmd SubmitForApprovalCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.SubmitForApproval(cmd.ChangedBy()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
