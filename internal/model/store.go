package model

// Store is a retail branch that submits stock orders through its public page
type Store struct {
	BaseModel
	StoreCode string `gorm:"type:varchar(50);uniqueIndex;not null" json:"store_code" validate:"required"`
	StoreName string `gorm:"type:varchar(255);not null" json:"store_name" validate:"required"`
	IsActive  bool   `gorm:"default:true" json:"is_active"`
}
