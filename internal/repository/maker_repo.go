package repository

import (
	"go-hq-ordering/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MakerRepository interface {
	Create(maker *model.Maker) error
	FindAll(activeOnly bool) ([]model.Maker, error)
	FindByID(id uuid.UUID) (*model.Maker, error)
	Update(maker *model.Maker) error
}

type makerRepo struct {
	db *gorm.DB
}

func NewMakerRepo(db *gorm.DB) MakerRepository {
	return &makerRepo{db}
}

func (r *makerRepo) Create(maker *model.Maker) error {
	return r.db.Create(maker).Error
}

func (r *makerRepo) FindAll(activeOnly bool) ([]model.Maker, error) {
	var makers []model.Maker
	q := r.db.Order("maker_name")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&makers).Error
	return makers, err
}

func (r *makerRepo) FindByID(id uuid.UUID) (*model.Maker, error) {
	var maker model.Maker
	err := r.db.First(&maker, "id = ?", id).Error
	return &maker, err
}

func (r *makerRepo) Update(maker *model.Maker) error {
	return r.db.Save(maker).Error
}
