package order

import (
	"time"

	"orderflow/internal/core/domain/model/kernel"
)

// SystemActor is the sentinel identity recorded in the status history when
// no authenticated actor is present.
const SystemActor = "system"

// HistoryEntry is one line of the append-only audit trail of an order.
// Entries are never mutated or deleted after creation.
type HistoryEntry struct {
	id        kernel.UUID
	status    Status
	notes     string
	changedBy string
	createdAt time.Time
}

// newHistoryEntry creates an audit entry stamped with the current time.
// An empty actor identity is replaced with SystemActor.
func newHistoryEntry(status Status, notes, changedBy string, at time.Time) *HistoryEntry {
	if changedBy == "" {
		changedBy = SystemActor
	}

	return &HistoryEntry{
		id:        kernel.NewUUID(),
		status:    status,
		notes:     notes,
		changedBy: changedBy,
		createdAt: at,
	}
}

// RestoreHistoryEntry reconstructs a history entry from persistence.
func RestoreHistoryEntry(
	id kernel.UUID,
	status Status,
	notes, changedBy string,
	createdAt time.Time,
) (*HistoryEntry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &HistoryEntry{
		id:        id,
		status:    status,
		notes:     notes,
		changedBy: changedBy,
		createdAt: createdAt,
	}, nil
}

// ID returns the entry's unique identifier.
func (h *HistoryEntry) ID() kernel.UUID {
	return h.id
}

// Status returns the order status recorded by this entry.
func (h *HistoryEntry) Status() Status {
	return h.status
}

// Notes returns the free-text note describing the transition.
func (h *HistoryEntry) Notes() string {
	return h.notes
}

// ChangedBy returns the identity of the actor who caused the transition.
func (h *HistoryEntry) ChangedBy() string {
	return h.changedBy
}

// CreatedAt returns when the entry was recorded.
func (h *HistoryEntry) CreatedAt() time.Time {
	return h.createdAt
}
