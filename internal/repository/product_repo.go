package repository

import (
	"go-hq-ordering/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(activeOnly bool) ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindByCode(code string) (*model.Product, error)
	Update(product *model.Product) error
	Deactivate(id uuid.UUID) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll(activeOnly bool) ([]model.Product, error) {
	var products []model.Product
	q := r.db.
		Preload("Maker").
		Preload("Category").
		Preload("AssignedStaff").
		Preload("HqInventory").
		Order("product_name")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.
		Preload("Maker").
		Preload("Category").
		Preload("AssignedStaff").
		Preload("HqInventory").
		First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) FindByCode(code string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "product_code = ?", code).Error
	return &product, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

// Deactivate soft-deletes via the is_active flag so order items keep a valid
// product reference
func (r *productRepo) Deactivate(id uuid.UUID) error {
	return r.db.Model(&model.Product{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
