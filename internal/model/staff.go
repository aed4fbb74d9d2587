package model

// Staff is a headquarters purchasing staff member.
//
// IsHqFulfillmentLead marks the member assigned when an order ships from HQ
// stock. IsExtensionFallback marks the member assigned when an order contains
// extension-category items that HQ stock cannot fully cover. Assignment is
// resolved from these flags, not from name matching.
type Staff struct {
	BaseModel
	Name                string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Email               string `gorm:"type:varchar(255)" json:"email"`
	Role                string `gorm:"type:varchar(50)" json:"role"`
	IsHqFulfillmentLead bool   `gorm:"default:false" json:"is_hq_fulfillment_lead"`
	IsExtensionFallback bool   `gorm:"default:false" json:"is_extension_fallback"`
	IsActive            bool   `gorm:"default:true" json:"is_active"`
}
