package order

import (
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// Level identifies one of the two sequential approval gates an order above
// the monetary threshold must pass.
type Level string

const (
	// LevelFirst is the first approval gate.
	LevelFirst Level = "first"

	// LevelSecond is the second approval gate. An order becomes fully
	// approved only once no second-level approval remains pending.
	LevelSecond Level = "second"
)

// LevelFromString converts a raw string into a Level.
func LevelFromString(s string) (Level, error) {
	level := Level(s)
	if err := level.Validate(); err != nil {
		return "", err
	}
	return level, nil
}

// Validate checks if the Level value is valid.
func (l Level) Validate() error {
	if l != LevelFirst && l != LevelSecond {
		return errs.NewValueIsInvalidErrorWithCause("approval level is invalid",
			fmt.Errorf("%q is not a valid approval level", string(l)))
	}
	return nil
}

// String returns the raw level value.
func (l Level) String() string {
	return string(l)
}

// ApprovalStatus represents the state of a single approval record.
type ApprovalStatus string

const (
	// ApprovalPending means the level has not been decided yet.
	ApprovalPending ApprovalStatus = "pending"

	// ApprovalApproved means the approver granted the level.
	ApprovalApproved ApprovalStatus = "approved"

	// ApprovalRejected means the approver rejected the level.
	ApprovalRejected ApprovalStatus = "rejected"
)

// ApprovalStatusFromString converts a raw string into an ApprovalStatus.
func ApprovalStatusFromString(s string) (ApprovalStatus, error) {
	status := ApprovalStatus(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks if the ApprovalStatus value is valid.
func (s ApprovalStatus) Validate() error {
	if s != ApprovalPending && s != ApprovalApproved && s != ApprovalRejected {
		return errs.NewValueIsInvalidErrorWithCause("approval status is invalid",
			fmt.Errorf("%q is not a valid approval status", string(s)))
	}
	return nil
}

// ValidateDecision checks that the status is usable as an approval decision.
// Only approved and rejected are decisions; pending is the undecided state.
func (s ApprovalStatus) ValidateDecision() error {
	if s != ApprovalApproved && s != ApprovalRejected {
		return errs.NewValueIsInvalidErrorWithCause("approval decision is invalid",
			fmt.Errorf("%q is not a valid approval decision", string(s)))
	}
	return nil
}

// String returns the raw approval status value.
func (s ApprovalStatus) String() string {
	return string(s)
}

// Approval is one record of the two-level approval workflow. Exactly one
// record per level exists per approval cycle. A record is created pending
// and becomes terminal once approved or rejected; resubmitting the order
// replaces the whole pair.
type Approval struct {
	id         kernel.UUID
	level      Level
	status     ApprovalStatus
	approvedBy string
	notes      string
	approvedAt *time.Time
}

// newPendingApproval creates an undecided approval record for the given level.
// Only the Order aggregate creates approvals, during submission.
func newPendingApproval(level Level) *Approval {
	return &Approval{
		id:     kernel.NewUUID(),
		level:  level,
		status: ApprovalPending,
	}
}

// RestoreApproval reconstructs an approval record from persistence.
// Returns an error if any stored value violates the model invariants.
func RestoreApproval(
	id kernel.UUID,
	level Level,
	status ApprovalStatus,
	approvedBy string,
	notes string,
	approvedAt *time.Time,
) (*Approval, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Approval{
		id:         id,
		level:      level,
		status:     status,
		approvedBy: approvedBy,
		notes:      notes,
		approvedAt: approvedAt,
	}, nil
}

// decide resolves a pending approval with the given decision.
// The decision timestamp is recorded and the record becomes terminal.
func (a *Approval) decide(decision ApprovalStatus, approvedBy, notes string, at time.Time) error {
	if err := decision.ValidateDecision(); err != nil {
		return err
	}
	if !a.IsPending() {
		return errs.NewInvalidStateError(
			fmt.Sprintf("approval at %s level is already %s", a.level, a.status))
	}

	a.status = decision
	a.approvedBy = approvedBy
	a.notes = notes
	a.approvedAt = &at
	return nil
}

// ID returns the approval record's unique identifier.
func (a *Approval) ID() kernel.UUID {
	return a.id
}

// Level returns the approval gate this record belongs to.
func (a *Approval) Level() Level {
	return a.level
}

// Status returns the current state of the approval record.
func (a *Approval) Status() ApprovalStatus {
	return a.status
}

// ApprovedBy returns the approver identity, empty until decided.
func (a *Approval) ApprovedBy() string {
	return a.approvedBy
}

// Notes returns the free-text notes attached to the decision.
func (a *Approval) Notes() string {
	return a.notes
}

// ApprovedAt returns the decision timestamp, nil until decided.
func (a *Approval) ApprovedAt() *time.Time {
	return a.approvedAt
}

// IsPending reports whether the record has not been decided yet.
func (a *Approval) IsPending() bool {
	return a.status == ApprovalPending
}

// IsApproved reports whether the record was granted.
func (a *Approval) IsApproved() bool {
	return a.status == ApprovalApproved
}

// IsRejected reports whether the record was rejected.
func (a *Approval) IsRejected() bool {
	return a.status == ApprovalRejected
}
