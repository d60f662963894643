// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"sort"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The child tables hold the order's line items, approval records and status
// history; items and approvals are replaced wholesale on update while the
// history only ever grows.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number      string          `gorm:"type:varchar(32);uniqueIndex"`
	Status      string          `gorm:"type:varchar(32);index"`
	Notes       string          `gorm:"type:text"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2)"`
	Items       []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Approvals   []ApprovalDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History     []HistoryDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line in the database.
// Position preserves the caller-supplied item ordering across reloads.
type ItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;index"`
	ProductName string          `gorm:"type:varchar(255)"`
	Description string          `gorm:"type:text"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity    int
	Subtotal    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Position    int
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// ApprovalDTO represents one approval record in the database.
// ApprovedAt stays NULL until the level is decided.
type ApprovalDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Level      string    `gorm:"type:varchar(16)"`
	Status     string    `gorm:"type:varchar(16);index"`
	ApprovedBy string    `gorm:"type:varchar(255)"`
	Notes      string    `gorm:"type:text"`
	ApprovedAt *time.Time
}

// TableName specifies the database table name for approval records.
func (ApprovalDTO) TableName() string {
	return "order_approvals"
}

// HistoryDTO represents one audit trail entry in the database.
// Seq is a database-assigned serial that gives entries sharing a timestamp
// a stable order.
type HistoryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq       int64     `gorm:"autoIncrement;uniqueIndex"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Status    string    `gorm:"type:varchar(32)"`
	Notes     string    `gorm:"type:text"`
	ChangedBy string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
}

// TableName specifies the database table name for status history entries.
func (HistoryDTO) TableName() string {
	return "order_status_histories"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for position, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     orderID,
			ProductName: item.ProductName(),
			Description: item.Description(),
			UnitPrice:   item.UnitPrice(),
			Quantity:    item.Quantity(),
			Subtotal:    item.Subtotal(),
			Position:    position,
		})
	}

	approvals := make([]ApprovalDTO, 0, len(aggregate.Approvals()))
	for _, approval := range aggregate.Approvals() {
		approvals = append(approvals, ApprovalDTO{
			ID:         approval.ID().Bytes(),
			OrderID:    orderID,
			Level:      approval.Level().String(),
			Status:     approval.Status().String(),
			ApprovedBy: approval.ApprovedBy(),
			Notes:      approval.Notes(),
			ApprovedAt: approval.ApprovedAt(),
		})
	}

	history := make([]HistoryDTO, 0, len(aggregate.History()))
	for _, entry := range aggregate.History() {
		history = append(history, HistoryDTO{
			ID:        entry.ID().Bytes(),
			OrderID:   orderID,
			Status:    entry.Status().String(),
			Notes:     entry.Notes(),
			ChangedBy: entry.ChangedBy(),
			CreatedAt: entry.CreatedAt(),
		})
	}

	return OrderDTO{
		ID:          orderID,
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

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items, approvals and history
// using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.NumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	sort.Slice(dto.Items, func(i, j int) bool {
		return dto.Items[i].Position < dto.Items[j].Position
	})
	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	// "first" sorts before "second", matching the workflow order.
	sort.Slice(dto.Approvals, func(i, j int) bool {
		return dto.Approvals[i].Level < dto.Approvals[j].Level
	})
	approvals := make([]*order.Approval, 0, len(dto.Approvals))
	for _, approvalDTO := range dto.Approvals {
		approval, approvalErr := approvalToDomain(approvalDTO)
		if approvalErr != nil {
			return nil, approvalErr
		}
		approvals = append(approvals, approval)
	}

	sort.Slice(dto.History, func(i, j int) bool {
		return dto.History[i].Seq < dto.History[j].Seq
	})
	history := make([]*order.HistoryEntry, 0, len(dto.History))
	for _, historyDTO := range dto.History {
		entry, entryErr := historyToDomain(historyDTO)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	return order.RestoreOrder(id, number, status, dto.Notes,
		items, approvals, history, dto.CreatedAt, dto.UpdatedAt)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return order.RestoreItem(id, dto.ProductName, dto.Description, dto.UnitPrice, dto.Quantity)
}

func approvalToDomain(dto ApprovalDTO) (*order.Approval, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	level, err := order.LevelFromString(dto.Level)
	if err != nil {
		return nil, err
	}

	status, err := order.ApprovalStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreApproval(id, level, status, dto.ApprovedBy, dto.Notes, dto.ApprovedAt)
}

func historyToDomain(dto HistoryDTO) (*order.HistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreHistoryEntry(id, status, dto.Notes, dto.ChangedBy, dto.CreatedAt)
}
