package repository

import (
	"go-hq-ordering/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StoreRepository interface {
	Create(store *model.Store) error
	FindAll(activeOnly bool) ([]model.Store, error)
	FindByID(id uuid.UUID) (*model.Store, error)
	FindActiveByCode(code string) (*model.Store, error)
	Update(store *model.Store) error
}

type storeRepo struct {
	db *gorm.DB
}

func NewStoreRepo(db *gorm.DB) StoreRepository {
	return &storeRepo{db}
}

func (r *storeRepo) Create(store *model.Store) error {
	return r.db.Create(store).Error
}

func (r *storeRepo) FindAll(activeOnly bool) ([]model.Store, error) {
	var stores []model.Store
	q := r.db.Order("store_name")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&stores).Error
	return stores, err
}

func (r *storeRepo) FindByID(id uuid.UUID) (*model.Store, error) {
	var store model.Store
	err := r.db.First(&store, "id = ?", id).Error
	return &store, err
}

func (r *storeRepo) FindActiveByCode(code string) (*model.Store, error) {
	var store model.Store
	err := r.db.First(&store, "store_code = ? AND is_active = ?", code, true).Error
	return &store, err
}

func (r *storeRepo) Update(store *model.Store) error {
	return r.db.Save(store).Error
}
