package model

import "github.com/google/uuid"

// Product is a stock item orderable by stores. Soft-deleted via IsActive so
// existing order items keep their reference.
type Product struct {
	BaseModel
	ProductCode string `gorm:"type:varchar(50);uniqueIndex;not null" json:"product_code" validate:"required"`
	ProductName string `gorm:"type:varchar(255);not null" json:"product_name" validate:"required"`

	// Free-text classification hierarchy, filled left to right
	Level1 string `gorm:"type:varchar(100)" json:"level1"`
	Level2 string `gorm:"type:varchar(100)" json:"level2"`
	Level3 string `gorm:"type:varchar(100)" json:"level3"`
	Level4 string `gorm:"type:varchar(100)" json:"level4"`
	Level5 string `gorm:"type:varchar(100)" json:"level5"`
	Level6 string `gorm:"type:varchar(100)" json:"level6"`
	Level7 string `gorm:"type:varchar(100)" json:"level7"`
	Level8 string `gorm:"type:varchar(100)" json:"level8"`

	UnitPrice int64  `gorm:"default:0" json:"unit_price"`
	CostPrice int64  `gorm:"default:0" json:"cost_price"`
	Supplier  string `gorm:"type:varchar(255)" json:"supplier"`
	Notes     string `gorm:"type:text" json:"notes"`

	MakerID    *uuid.UUID `gorm:"type:uuid;index" json:"maker_id"`
	Maker      *Maker     `gorm:"foreignKey:MakerID" json:"maker,omitempty"`
	CategoryID *uuid.UUID `gorm:"type:uuid;index" json:"category_id"`
	Category   *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	// Default purchasing assignee label, used when HQ holds no stock
	AssignedStaffID *uuid.UUID `gorm:"type:uuid" json:"assigned_staff_id"`
	AssignedStaff   *Staff     `gorm:"foreignKey:AssignedStaffID" json:"assigned_staff,omitempty"`

	TrackHqInventory bool `gorm:"default:true" json:"track_hq_inventory"`
	IsActive         bool `gorm:"default:true" json:"is_active"`

	HqInventory *HqInventory `gorm:"foreignKey:ProductID" json:"hq_inventory,omitempty"`
}
