package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

const (
	AssignmentManual = "manual"
	AssignmentAuto   = "auto"
)

const (
	FulfilledFromHQ       = "hq"
	FulfilledFromSupplier = "supplier"
)

// Order is a store's stock request. Completed and cancelled are terminal.
type Order struct {
	BaseModel
	OrderNumber string      `gorm:"type:varchar(50);uniqueIndex;not null" json:"order_number"`
	StoreID     uuid.UUID   `gorm:"type:uuid;not null;index" json:"store_id" validate:"uuid_required"`
	Store       *Store      `gorm:"foreignKey:StoreID" json:"store,omitempty"`
	Status      OrderStatus `gorm:"type:varchar(20);not null;default:pending" json:"status"`

	AssignedStaffID *uuid.UUID `gorm:"type:uuid" json:"assigned_staff_id"`
	AssignedStaff   *Staff     `gorm:"foreignKey:AssignedStaffID" json:"assigned_staff,omitempty"`
	// AssignmentType is "manual" when staff was chosen at creation, "auto"
	// when assigned during processing, empty while undecided.
	AssignmentType string `gorm:"type:varchar(10)" json:"assignment_type"`

	Notes       string     `gorm:"type:text" json:"notes"`
	OrderDate   time.Time  `json:"order_date"`
	CompletedAt *time.Time `json:"completed_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// BeforeCreate assigns the UUID and a human-readable order number on insert
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if err := o.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if o.OrderNumber == "" {
		o.OrderNumber = fmt.Sprintf("ORD-%s-%s",
			time.Now().Format("20060102"),
			strings.ToUpper(o.ID.String()[:6]))
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now()
	}
	return nil
}

// IsTerminal reports whether no further transition is allowed
func (o *Order) IsTerminal() bool {
	return o.Status == OrderStatusCompleted || o.Status == OrderStatusCancelled
}

// OrderItem belongs to exactly one order and references one product.
// FulfilledFrom stays empty while the order is pending; it is decided per item
// when the order enters processing.
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	Order     *Order    `gorm:"foreignKey:OrderID" json:"order,omitempty" validate:"-"`
	ProductID uuid.UUID `gorm:"type:uuid;not null" json:"product_id" validate:"uuid_required"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`

	Quantity  int   `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	UnitPrice int64 `gorm:"default:0" json:"unit_price"`

	// HqStockAtOrder snapshots HQ stock at the moment the fulfillment source
	// was decided
	HqStockAtOrder *int   `json:"hq_stock_at_order"`
	FulfilledFrom  string `gorm:"type:varchar(10)" json:"fulfilled_from"`
}
