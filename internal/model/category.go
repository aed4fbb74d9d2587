package model

// Category classifies products. IsExtension marks categories that follow the
// extension fallback rule during staff assignment.
type Category struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string `gorm:"type:text" json:"description"`
	SortOrder   int    `gorm:"default:0" json:"sort_order"`
	IsExtension bool   `gorm:"default:false" json:"is_extension"`
}
