package service

import (
	"errors"
	"testing"

	"go-hq-ordering/internal/model"
	"go-hq-ordering/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newInventoryEnv(t *testing.T) (*gorm.DB, InventoryService) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewInventoryService(repository.NewProductRepo(db), repository.NewInventoryRepo(db))
	return db, svc
}

func lastHistory(t *testing.T, db *gorm.DB) *model.InventoryHistory {
	t.Helper()
	var h model.InventoryHistory
	require.NoError(t, db.Order("created_at DESC").First(&h).Error)
	return &h
}

func TestApplyMovementInCreatesInventoryLazily(t *testing.T) {
	db, svc := newInventoryEnv(t)
	product := createTestProduct(t, db, "P-001", "Shelf bracket", productOpts{})

	inv, err := svc.ApplyMovement(product.ID, model.ChangeIn, 7, "delivery")
	require.NoError(t, err)

	assert.Equal(t, 7, inv.Quantity)
	assert.Equal(t, model.DefaultThreshold, inv.Threshold)

	h := lastHistory(t, db)
	assert.Equal(t, model.ChangeIn, h.ChangeType)
	assert.Equal(t, 7, h.Quantity)
	assert.Equal(t, 0, h.PreviousQuantity)
	assert.Equal(t, 7, h.NewQuantity)
	assert.Equal(t, "delivery", h.Reason)
}

func TestApplyMovementOutClampsAtZero(t *testing.T) {
	db, svc := newInventoryEnv(t)
	product := createTestProduct(t, db, "P-001", "Shelf bracket", productOpts{})
	setTestStock(t, db, product.ID, 5, 5)

	inv, err := svc.ApplyMovement(product.ID, model.ChangeOut, 8, "shipment")
	require.NoError(t, err)
	assert.Equal(t, 0, inv.Quantity)

	// The recorded delta is the requested amount, not the effective change
	h := lastHistory(t, db)
	assert.Equal(t, -8, h.Quantity)
	assert.Equal(t, 5, h.PreviousQuantity)
	assert.Equal(t, 0, h.NewQuantity)
}

func TestApplyMovementOutSubtracts(t *testing.T) {
	db, svc := newInventoryEnv(t)
	product := createTestProduct(t, db, "P-001", "Shelf bracket", productOpts{})
	setTestStock(t, db, product.ID, 12, 5)

	inv, err := svc.ApplyMovement(product.ID, model.ChangeOut, 4, "")
	require.NoError(t, err)
	assert.Equal(t, 8, inv.Quantity)

	h := lastHistory(t, db)
	assert.Equal(t, -4, h.Quantity)
	assert.Equal(t, 12, h.PreviousQuantity)
	assert.Equal(t, 8, h.NewQuantity)
}

func TestApplyMovementAdjustSetsAbsolute(t *testing.T) {
	db, svc := newInventoryEnv(t)
	product := createTestProduct(t, db, "P-001", "Shelf bracket", productOpts{})
	setTestStock(t, db, product.ID, 10, 5)

	inv, err := svc.ApplyMovement(product.ID, model.ChangeAdjust, 3, "stocktake")
	require.NoError(t, err)
	assert.Equal(t, 3, inv.Quantity)

	// Adjust records new minus previous
	h := lastHistory(t, db)
	assert.Equal(t, -7, h.Quantity)
	assert.Equal(t, 10, h.PreviousQuantity)
	assert.Equal(t, 3, h.NewQuantity)
}

func TestApplyMovementRejectsBadInput(t *testing.T) {
	db, svc := newInventoryEnv(t)
	product := createTestProduct(t, db, "P-001", "Shelf bracket", productOpts{})

	_, err := svc.ApplyMovement(product.ID, model.ChangeIn, 0, "")
	assert.ErrorIs(t, err, ErrQuantityNotPositive)

	_, err = svc.ApplyMovement(product.ID, model.ChangeOut, -2, "")
	assert.ErrorIs(t, err, ErrQuantityNotPositive)

	_, err = svc.ApplyMovement(product.ID, model.ChangeAdjust, -1, "")
	assert.ErrorIs(t, err, ErrNegativeAdjust)

	_, err = svc.ApplyMovement(product.ID, model.ChangeType("bogus"), 1, "")
	assert.ErrorIs(t, err, ErrUnknownChangeType)

	// Rejected before any write
	var count int64
	require.NoError(t, db.Model(&model.InventoryHistory{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetOrCreateInventoryIsIdempotent(t *testing.T) {
	db, svc := newInventoryEnv(t)
	product := createTestProduct(t, db, "P-001", "Shelf bracket", productOpts{})

	first, err := svc.GetOrCreateInventory(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Quantity)
	assert.Equal(t, model.DefaultThreshold, first.Threshold)

	second, err := svc.GetOrCreateInventory(product.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&model.HqInventory{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

// failingHistoryRepo simulates an audit write that fails after the stock
// write succeeded
type failingHistoryRepo struct {
	repository.InventoryRepository
}

func (r *failingHistoryRepo) AppendHistory(h *model.InventoryHistory) error {
	return errors.New("history table unavailable")
}

func TestApplyMovementSucceedsWhenHistoryFails(t *testing.T) {
	db := setupTestDB(t)
	invRepo := &failingHistoryRepo{repository.NewInventoryRepo(db)}
	svc := NewInventoryService(repository.NewProductRepo(db), invRepo)
	product := createTestProduct(t, db, "P-001", "Shelf bracket", productOpts{})
	setTestStock(t, db, product.ID, 2, 5)

	// Stock truth wins over audit completeness
	inv, err := svc.ApplyMovement(product.ID, model.ChangeIn, 3, "")
	require.NoError(t, err)
	assert.Equal(t, 5, inv.Quantity)

	var count int64
	require.NoError(t, db.Model(&model.InventoryHistory{}).Count(&count).Error)
	assert.Zero(t, count)
}

// failingStockRepo simulates the stock write itself failing
type failingStockRepo struct {
	repository.InventoryRepository
}

func (r *failingStockRepo) UpdateQuantity(id uuid.UUID, newQuantity int) error {
	return errors.New("store unreachable")
}

func TestApplyMovementAbortsWhenStockWriteFails(t *testing.T) {
	db := setupTestDB(t)
	invRepo := &failingStockRepo{repository.NewInventoryRepo(db)}
	svc := NewInventoryService(repository.NewProductRepo(db), invRepo)
	product := createTestProduct(t, db, "P-001", "Shelf bracket", productOpts{})
	setTestStock(t, db, product.ID, 2, 5)

	_, err := svc.ApplyMovement(product.ID, model.ChangeIn, 3, "")
	require.Error(t, err)

	// No history without a successful stock write
	var count int64
	require.NoError(t, db.Model(&model.InventoryHistory{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListLowStockSeverityTiers(t *testing.T) {
	db, svc := newInventoryEnv(t)

	critical := createTestProduct(t, db, "P-001", "Critical item", productOpts{})
	setTestStock(t, db, critical.ID, 1, 5)
	warning := createTestProduct(t, db, "P-002", "Warning item", productOpts{})
	setTestStock(t, db, warning.ID, 2, 5)
	notice := createTestProduct(t, db, "P-003", "Notice item", productOpts{})
	setTestStock(t, db, notice.ID, 5, 5)
	healthy := createTestProduct(t, db, "P-004", "Healthy item", productOpts{})
	setTestStock(t, db, healthy.ID, 6, 5)
	// No inventory row reads as quantity 0, threshold 5
	untracked := createTestProduct(t, db, "P-005", "Untracked item", productOpts{})

	alerts, err := svc.ListLowStock()
	require.NoError(t, err)

	byCode := make(map[string]LowStockAlert)
	for _, a := range alerts {
		byCode[a.Product.ProductCode] = a
	}

	require.Len(t, alerts, 4)
	assert.Equal(t, SeverityCritical, byCode["P-001"].Severity)
	assert.Equal(t, SeverityWarning, byCode["P-002"].Severity)
	assert.Equal(t, SeverityNotice, byCode["P-003"].Severity)
	assert.NotContains(t, byCode, "P-004")
	assert.Equal(t, SeverityCritical, byCode[untracked.ProductCode].Severity)
	assert.Equal(t, 0, byCode[untracked.ProductCode].Quantity)
}
