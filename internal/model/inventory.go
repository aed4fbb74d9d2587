package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChangeType string

const (
	ChangeIn     ChangeType = "in"
	ChangeOut    ChangeType = "out"
	ChangeAdjust ChangeType = "adjust"
	// ChangeOrderFulfill is part of the history schema but order completion
	// records debits as ChangeOut with a reason text instead.
	ChangeOrderFulfill ChangeType = "order_fulfill"
)

// DefaultThreshold is the reorder point for lazily created inventory rows
const DefaultThreshold = 5

// HqInventory holds the current headquarters stock per product (1:1, created
// lazily on first movement). Mutated only through the inventory ledger.
type HqInventory struct {
	BaseModel
	ProductID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"product_id" validate:"uuid_required"`
	Quantity  int       `gorm:"default:0" json:"quantity"`
	Threshold int       `gorm:"default:5" json:"threshold"`
}

// InventoryHistory is an append-only log row per stock change. Quantity is the
// signed delta; for adjust movements it is new minus previous.
type InventoryHistory struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ProductID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"product_id"`
	Product          *Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	ChangeType       ChangeType `gorm:"type:varchar(20);not null" json:"change_type"`
	Quantity         int        `gorm:"not null" json:"quantity"`
	PreviousQuantity int        `gorm:"not null" json:"previous_quantity"`
	NewQuantity      int        `gorm:"not null" json:"new_quantity"`
	Reason           string     `gorm:"type:text" json:"reason"`
	OrderID          *uuid.UUID `gorm:"type:uuid" json:"order_id"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (h *InventoryHistory) BeforeCreate(tx *gorm.DB) (err error) {
	h.ID = uuid.New()
	return
}
