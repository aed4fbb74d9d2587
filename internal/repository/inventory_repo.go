package repository

import (
	"go-hq-ordering/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryRepository interface {
	FindByProductID(productID uuid.UUID) (*model.HqInventory, error)
	FindAll() ([]model.HqInventory, error)
	Create(inv *model.HqInventory) error
	UpdateQuantity(id uuid.UUID, newQuantity int) error
	AppendHistory(h *model.InventoryHistory) error
	ListHistory(limit int) ([]model.InventoryHistory, error)
	DeleteHistory(ids []uuid.UUID) error
	CountLowStock() (int64, error)
	TotalQuantity() (int64, error)
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

func (r *inventoryRepo) FindByProductID(productID uuid.UUID) (*model.HqInventory, error) {
	var inv model.HqInventory
	err := r.db.First(&inv, "product_id = ?", productID).Error
	return &inv, err
}

func (r *inventoryRepo) FindAll() ([]model.HqInventory, error) {
	var rows []model.HqInventory
	err := r.db.Find(&rows).Error
	return rows, err
}

func (r *inventoryRepo) Create(inv *model.HqInventory) error {
	return r.db.Create(inv).Error
}

func (r *inventoryRepo) UpdateQuantity(id uuid.UUID, newQuantity int) error {
	return r.db.Model(&model.HqInventory{}).
		Where("id = ?", id).
		Update("quantity", newQuantity).Error
}

func (r *inventoryRepo) AppendHistory(h *model.InventoryHistory) error {
	return r.db.Create(h).Error
}

func (r *inventoryRepo) ListHistory(limit int) ([]model.InventoryHistory, error) {
	var rows []model.InventoryHistory
	err := r.db.Preload("Product").
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *inventoryRepo) DeleteHistory(ids []uuid.UUID) error {
	return r.db.Where("id IN ?", ids).Delete(&model.InventoryHistory{}).Error
}

func (r *inventoryRepo) CountLowStock() (int64, error) {
	var count int64
	err := r.db.Model(&model.HqInventory{}).
		Where("quantity <= threshold").
		Count(&count).Error
	return count, err
}

func (r *inventoryRepo) TotalQuantity() (int64, error) {
	var total int64
	err := r.db.Model(&model.HqInventory{}).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return total, err
}
