// Package numberseq allocates human-readable order numbers from an atomic
// database counter. The counter row is bumped with a single upsert, so two
// transactions can never be handed the same number.
package numberseq

import (
	"context"

	"orderflow/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// sequenceID is the counter row shared by all order number allocations.
const sequenceID = "orders"

// SequenceDTO represents the counter table backing order number allocation.
type SequenceDTO struct {
	ID    string `gorm:"type:varchar(32);primaryKey"`
	Value int64
}

// TableName specifies the database table name for number sequences.
func (SequenceDTO) TableName() string {
	return "order_number_sequences"
}

// GormNumberSequence implements NumberSequence using GORM.
type GormNumberSequence struct {
	db *gorm.DB
}

// NewGormNumberSequence creates a number sequence bound to the given
// connection. Pass a transaction handle to make the allocated number part
// of the surrounding unit of work.
func NewGormNumberSequence(db *gorm.DB) *GormNumberSequence {
	return &GormNumberSequence{db: db}
}

// Next bumps the counter and returns the formatted order number.
// The row-level lock taken by the upsert serializes concurrent allocations.
func (s *GormNumberSequence) Next(ctx context.Context) (order.Number, error) {
	var value int64
	row := s.db.WithContext(ctx).Raw(`
		INSERT INTO order_number_sequences (id, value)
		VALUES (?, 1)
		ON CONFLICT (id) DO UPDATE SET value = order_number_sequences.value + 1
		RETURNING value
	`, sequenceID).Row()
	if err := row.Scan(&value); err != nil {
		return "", err
	}

	return order.NumberFromSequence(value)
}
