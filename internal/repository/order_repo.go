package repository

import (
	"time"

	"go-hq-ordering/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *model.Order) error
	CreateItems(items []model.OrderItem) error
	Delete(id uuid.UUID) error
	DeleteByIDs(ids []uuid.UUID) error
	DeleteItemsByOrderIDs(orderIDs []uuid.UUID) error
	FindAll() ([]model.Order, error)
	FindByID(id uuid.UUID) (*model.Order, error)
	ListRecent(limit int) ([]model.Order, error)
	UpdateFields(id uuid.UUID, fields map[string]interface{}) error
	UpdateItemFields(itemID uuid.UUID, fields map[string]interface{}) error
	FindOpenSupplierItems() ([]model.OrderItem, error)
	CountByStatus(status model.OrderStatus) (int64, error)
	CountCompletedSince(t time.Time) (int64, error)
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) Create(order *model.Order) error {
	return r.db.Omit("Items").Create(order).Error
}

func (r *orderRepo) CreateItems(items []model.OrderItem) error {
	return r.db.Create(&items).Error
}

func (r *orderRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Order{}, "id = ?", id).Error
}

func (r *orderRepo) DeleteByIDs(ids []uuid.UUID) error {
	return r.db.Where("id IN ?", ids).Delete(&model.Order{}).Error
}

// DeleteItemsByOrderIDs must run before DeleteByIDs; item deletion precedes
// order deletion (application-layer cascade)
func (r *orderRepo) DeleteItemsByOrderIDs(orderIDs []uuid.UUID) error {
	return r.db.Where("order_id IN ?", orderIDs).Delete(&model.OrderItem{}).Error
}

func (r *orderRepo) FindAll() ([]model.Order, error) {
	var orders []model.Order
	err := r.db.
		Preload("Store").
		Preload("AssignedStaff").
		Preload("Items.Product.HqInventory").
		Preload("Items.Product.Category").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindByID(id uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := r.db.
		Preload("Store").
		Preload("AssignedStaff").
		Preload("Items.Product.HqInventory").
		Preload("Items.Product.Category").
		First(&order, "id = ?", id).Error
	return &order, err
}

func (r *orderRepo) ListRecent(limit int) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.
		Preload("Store").
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	return r.db.Model(&model.Order{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *orderRepo) UpdateItemFields(itemID uuid.UUID, fields map[string]interface{}) error {
	return r.db.Model(&model.OrderItem{}).
		Where("id = ?", itemID).
		Updates(fields).Error
}

// FindOpenSupplierItems returns items of pending/processing orders whose
// fulfillment source is supplier or not yet decided, with the relations the
// purchasing aggregator needs.
func (r *orderRepo) FindOpenSupplierItems() ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := r.db.
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status IN ?", []model.OrderStatus{
			model.OrderStatusPending,
			model.OrderStatusProcessing,
		}).
		Where("order_items.fulfilled_from = ? OR order_items.fulfilled_from = '' OR order_items.fulfilled_from IS NULL",
			model.FulfilledFromSupplier).
		Preload("Order.Store").
		Preload("Product.Maker").
		Preload("Product.Category").
		Preload("Product.AssignedStaff").
		Find(&items).Error
	return items, err
}

func (r *orderRepo) CountByStatus(status model.OrderStatus) (int64, error) {
	var count int64
	err := r.db.Model(&model.Order{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *orderRepo) CountCompletedSince(t time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.Order{}).
		Where("status = ? AND completed_at >= ?", model.OrderStatusCompleted, t).
		Count(&count).Error
	return count, err
}
