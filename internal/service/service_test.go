package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"go-hq-ordering/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named in-memory database per test keeps connections of the same
	// pool on the same data without crosstalk between tests
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Store{},
		&model.Staff{},
		&model.Maker{},
		&model.Category{},
		&model.Product{},
		&model.HqInventory{},
		&model.InventoryHistory{},
		&model.Order{},
		&model.OrderItem{},
	))
	return db
}

func createTestStore(t *testing.T, db *gorm.DB, code, name string) *model.Store {
	t.Helper()
	store := &model.Store{StoreCode: code, StoreName: name, IsActive: true}
	require.NoError(t, db.Create(store).Error)
	return store
}

func createTestStaff(t *testing.T, db *gorm.DB, name string, lead, fallback bool) *model.Staff {
	t.Helper()
	staff := &model.Staff{
		Name:                name,
		IsHqFulfillmentLead: lead,
		IsExtensionFallback: fallback,
		IsActive:            true,
	}
	require.NoError(t, db.Create(staff).Error)
	return staff
}

func createTestMaker(t *testing.T, db *gorm.DB, code, name string) *model.Maker {
	t.Helper()
	maker := &model.Maker{GroupCode: code, MakerName: name, IsActive: true}
	require.NoError(t, db.Create(maker).Error)
	return maker
}

func createTestCategory(t *testing.T, db *gorm.DB, name string, extension bool) *model.Category {
	t.Helper()
	category := &model.Category{Name: name, IsExtension: extension}
	require.NoError(t, db.Create(category).Error)
	return category
}

type productOpts struct {
	makerID    *uuid.UUID
	categoryID *uuid.UUID
	staffID    *uuid.UUID
}

func createTestProduct(t *testing.T, db *gorm.DB, code, name string, opts productOpts) *model.Product {
	t.Helper()
	product := &model.Product{
		ProductCode:     code,
		ProductName:     name,
		MakerID:         opts.makerID,
		CategoryID:      opts.categoryID,
		AssignedStaffID: opts.staffID,
		IsActive:        true,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func setTestStock(t *testing.T, db *gorm.DB, productID uuid.UUID, quantity, threshold int) *model.HqInventory {
	t.Helper()
	inv := &model.HqInventory{ProductID: productID, Quantity: quantity, Threshold: threshold}
	require.NoError(t, db.Create(inv).Error)
	return inv
}

func backdateStaff(t *testing.T, db *gorm.DB, staffID uuid.UUID, createdAt time.Time) {
	t.Helper()
	require.NoError(t, db.Model(&model.Staff{}).
		Where("id = ?", staffID).
		Update("created_at", createdAt).Error)
}
