package model

// Maker is a supplier/manufacturer the purchasing list is grouped by
type Maker struct {
	BaseModel
	GroupCode     string `gorm:"type:varchar(50);not null" json:"group_code" validate:"required"`
	MakerName     string `gorm:"type:varchar(255);not null" json:"maker_name" validate:"required"`
	OrderCategory string `gorm:"type:varchar(100)" json:"order_category"`
	MinimumOrder  int64  `gorm:"default:0" json:"minimum_order"`
	IsActive      bool   `gorm:"default:true" json:"is_active"`
}
