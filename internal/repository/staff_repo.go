package repository

import (
	"go-hq-ordering/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffRepository interface {
	Create(staff *model.Staff) error
	FindAll(activeOnly bool) ([]model.Staff, error)
	FindByID(id uuid.UUID) (*model.Staff, error)
	Update(staff *model.Staff) error
	FindFulfillmentLead() (*model.Staff, error)
	FindExtensionFallback() (*model.Staff, error)
	FindFirstActive() (*model.Staff, error)
}

type staffRepo struct {
	db *gorm.DB
}

func NewStaffRepo(db *gorm.DB) StaffRepository {
	return &staffRepo{db}
}

func (r *staffRepo) Create(staff *model.Staff) error {
	return r.db.Create(staff).Error
}

func (r *staffRepo) FindAll(activeOnly bool) ([]model.Staff, error) {
	var staff []model.Staff
	q := r.db.Order("name")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&staff).Error
	return staff, err
}

func (r *staffRepo) FindByID(id uuid.UUID) (*model.Staff, error) {
	var staff model.Staff
	err := r.db.First(&staff, "id = ?", id).Error
	return &staff, err
}

func (r *staffRepo) Update(staff *model.Staff) error {
	return r.db.Save(staff).Error
}

func (r *staffRepo) FindFulfillmentLead() (*model.Staff, error) {
	var staff model.Staff
	err := r.db.First(&staff, "is_hq_fulfillment_lead = ? AND is_active = ?", true, true).Error
	return &staff, err
}

func (r *staffRepo) FindExtensionFallback() (*model.Staff, error) {
	var staff model.Staff
	err := r.db.First(&staff, "is_extension_fallback = ? AND is_active = ?", true, true).Error
	return &staff, err
}

func (r *staffRepo) FindFirstActive() (*model.Staff, error) {
	var staff model.Staff
	err := r.db.Where("is_active = ?", true).Order("created_at ASC").First(&staff).Error
	return &staff, err
}
