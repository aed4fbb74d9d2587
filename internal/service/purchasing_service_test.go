package service

import (
	"testing"

	"go-hq-ordering/internal/model"
	"go-hq-ordering/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type purchasingEnv struct {
	db       *gorm.DB
	orderSvc OrderService
	svc      PurchasingService
}

func newPurchasingEnv(t *testing.T) *purchasingEnv {
	t.Helper()
	db := setupTestDB(t)
	orderRepo := repository.NewOrderRepo(db)
	invRepo := repository.NewInventoryRepo(db)
	invSvc := NewInventoryService(repository.NewProductRepo(db), invRepo)
	resolver := NewAssignmentResolver(repository.NewStaffRepo(db))
	return &purchasingEnv{
		db:       db,
		orderSvc: NewOrderService(orderRepo, invSvc, resolver),
		svc:      NewPurchasingService(orderRepo, invRepo, resolver),
	}
}

func (e *purchasingEnv) placeOrder(t *testing.T, store *model.Store, items ...CreateOrderItemInput) *model.Order {
	t.Helper()
	order, err := e.orderSvc.CreateOrder(CreateOrderInput{StoreID: store.ID, Items: items})
	require.NoError(t, err)
	return order
}

func productsByCode(groups []MakerGroup) map[string]ProductSummary {
	byCode := make(map[string]ProductSummary)
	for _, g := range groups {
		for _, p := range g.Products {
			byCode[p.ProductCode] = p
		}
	}
	return byCode
}

func TestBuildPurchasingListAggregatesAcrossStores(t *testing.T) {
	env := newPurchasingEnv(t)
	lead := createTestStaff(t, env.db, "Asaka", true, false)
	maker := createTestMaker(t, env.db, "M-01", "Alpha Works")
	storeA := createTestStore(t, env.db, "A", "Store A")
	storeB := createTestStore(t, env.db, "B", "Store B")
	p := createTestProduct(t, env.db, "P-001", "Bracket", productOpts{makerID: &maker.ID})
	setTestStock(t, env.db, p.ID, 3, 5)

	orderA := env.placeOrder(t, storeA, CreateOrderItemInput{ProductID: p.ID, Quantity: 2})
	env.placeOrder(t, storeB, CreateOrderItemInput{ProductID: p.ID, Quantity: 4})

	groups, err := env.svc.BuildPurchasingList()
	require.NoError(t, err)

	require.Len(t, groups, 1)
	assert.Equal(t, "Alpha Works", groups[0].MakerName)
	require.Len(t, groups[0].Products, 1)

	summary := groups[0].Products[0]
	assert.Equal(t, 6, summary.TotalQuantity)
	assert.Equal(t, 3, summary.HqStock)
	assert.Equal(t, lead.Name, summary.AssignedStaff)
	require.Len(t, summary.Stores, 2)

	byStore := make(map[string]StoreEntry)
	for _, s := range summary.Stores {
		byStore[s.StoreCode] = s
	}
	assert.Equal(t, 2, byStore["A"].Quantity)
	assert.Equal(t, orderA.OrderNumber, byStore["A"].OrderNumber)
	assert.Equal(t, 4, byStore["B"].Quantity)
	assert.Equal(t, CheckKeyFor(p.ID, "A"), byStore["A"].CheckKey)
	assert.Equal(t, CheckKeyFor(p.ID, "B"), byStore["B"].CheckKey)
}

func TestBuildPurchasingListMergesSameStoreLines(t *testing.T) {
	env := newPurchasingEnv(t)
	createTestStaff(t, env.db, "Asaka", true, false)
	store := createTestStore(t, env.db, "A", "Store A")
	p := createTestProduct(t, env.db, "P-001", "Bracket", productOpts{})

	env.placeOrder(t, store, CreateOrderItemInput{ProductID: p.ID, Quantity: 2})
	env.placeOrder(t, store, CreateOrderItemInput{ProductID: p.ID, Quantity: 3})

	groups, err := env.svc.BuildPurchasingList()
	require.NoError(t, err)

	summary := productsByCode(groups)["P-001"]
	assert.Equal(t, 5, summary.TotalQuantity)
	require.Len(t, summary.Stores, 1)
	assert.Equal(t, 5, summary.Stores[0].Quantity)
}

func TestBuildPurchasingListExcludesHqFulfilledAndClosedItems(t *testing.T) {
	env := newPurchasingEnv(t)
	createTestStaff(t, env.db, "Asaka", true, false)
	store := createTestStore(t, env.db, "A", "Store A")

	hqCovered := createTestProduct(t, env.db, "P-001", "Bracket", productOpts{})
	setTestStock(t, env.db, hqCovered.ID, 20, 5)
	supplierOnly := createTestProduct(t, env.db, "P-002", "Hinge", productOpts{})
	setTestStock(t, env.db, supplierOnly.ID, 0, 5)
	cancelledProduct := createTestProduct(t, env.db, "P-003", "Latch", productOpts{})

	mixed := env.placeOrder(t, store,
		CreateOrderItemInput{ProductID: hqCovered.ID, Quantity: 2},
		CreateOrderItemInput{ProductID: supplierOnly.ID, Quantity: 5},
	)
	_, err := env.orderSvc.BeginProcessing(mixed.ID)
	require.NoError(t, err)

	cancelled := env.placeOrder(t, store, CreateOrderItemInput{ProductID: cancelledProduct.ID, Quantity: 1})
	_, err = env.orderSvc.Cancel(cancelled.ID)
	require.NoError(t, err)

	groups, err := env.svc.BuildPurchasingList()
	require.NoError(t, err)

	byCode := productsByCode(groups)
	assert.NotContains(t, byCode, "P-001")
	assert.NotContains(t, byCode, "P-003")
	require.Contains(t, byCode, "P-002")
	assert.Equal(t, 5, byCode["P-002"].TotalQuantity)
}

func TestBuildPurchasingListExtensionFallbackAssignment(t *testing.T) {
	env := newPurchasingEnv(t)
	createTestStaff(t, env.db, "Asaka", true, false)
	fallback := createTestStaff(t, env.db, "Kane", false, true)
	extension := createTestCategory(t, env.db, "Extensions", true)
	store := createTestStore(t, env.db, "A", "Store A")

	short := createTestProduct(t, env.db, "P-001", "Extension cord", productOpts{categoryID: &extension.ID})
	setTestStock(t, env.db, short.ID, 1, 5)

	env.placeOrder(t, store, CreateOrderItemInput{ProductID: short.ID, Quantity: 3})

	groups, err := env.svc.BuildPurchasingList()
	require.NoError(t, err)

	summary := productsByCode(groups)["P-001"]
	assert.Equal(t, fallback.Name, summary.AssignedStaff)
}

func TestBuildPurchasingListGroupsByMakerSorted(t *testing.T) {
	env := newPurchasingEnv(t)
	createTestStaff(t, env.db, "Asaka", true, false)
	store := createTestStore(t, env.db, "A", "Store A")

	beta := createTestMaker(t, env.db, "M-02", "Beta Supply")
	alpha := createTestMaker(t, env.db, "M-01", "Alpha Works")

	pBeta := createTestProduct(t, env.db, "P-001", "Bracket", productOpts{makerID: &beta.ID})
	pAlpha := createTestProduct(t, env.db, "P-002", "Hinge", productOpts{makerID: &alpha.ID})
	pNone := createTestProduct(t, env.db, "P-003", "Latch", productOpts{})

	env.placeOrder(t, store,
		CreateOrderItemInput{ProductID: pBeta.ID, Quantity: 1},
		CreateOrderItemInput{ProductID: pAlpha.ID, Quantity: 1},
		CreateOrderItemInput{ProductID: pNone.ID, Quantity: 1},
	)

	groups, err := env.svc.BuildPurchasingList()
	require.NoError(t, err)

	require.Len(t, groups, 3)
	names := []string{groups[0].MakerName, groups[1].MakerName, groups[2].MakerName}
	assert.Equal(t, []string{"Alpha Works", "Beta Supply", unassignedLabel}, names)
}

func TestBuildPurchasingListEmptyWhenNoOpenDemand(t *testing.T) {
	env := newPurchasingEnv(t)

	groups, err := env.svc.BuildPurchasingList()
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestAllStoresChecked(t *testing.T) {
	summary := ProductSummary{Stores: []StoreEntry{
		{CheckKey: "p1_A"},
		{CheckKey: "p1_B"},
	}}

	assert.False(t, AllStoresChecked(summary, nil))
	assert.False(t, AllStoresChecked(summary, map[string]bool{"p1_A": true}))
	assert.True(t, AllStoresChecked(summary, map[string]bool{"p1_A": true, "p1_B": true}))
	assert.True(t, AllStoresChecked(ProductSummary{}, nil))
}
