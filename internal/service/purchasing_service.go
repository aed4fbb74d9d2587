package service

import (
	"fmt"
	"sort"

	"go-hq-ordering/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const unassignedLabel = "unassigned"

// StoreEntry is one store's share of a product's open demand. CheckKey
// identifies the (product, store) pair for the ephemeral completion checklist.
type StoreEntry struct {
	StoreName   string `json:"store_name"`
	StoreCode   string `json:"store_code"`
	OrderNumber string `json:"order_number"`
	Quantity    int    `json:"quantity"`
	CheckKey    string `json:"check_key"`
}

// ProductSummary aggregates all qualifying order items of one product
type ProductSummary struct {
	ProductID        uuid.UUID    `json:"product_id"`
	ProductCode      string       `json:"product_code"`
	ProductName      string       `json:"product_name"`
	MakerID          string       `json:"maker_id"`
	MakerName        string       `json:"maker_name"`
	CategoryName     string       `json:"category_name"`
	TotalQuantity    int          `json:"total_quantity"`
	HqStock          int          `json:"hq_stock"`
	DefaultStaffName string       `json:"default_staff_name"`
	AssignedStaff    string       `json:"assigned_staff"`
	Stores           []StoreEntry `json:"stores"`
	isExtension      bool
}

// MakerGroup is the maker-level grouping of the purchasing list
type MakerGroup struct {
	MakerID   string           `json:"maker_id"`
	MakerName string           `json:"maker_name"`
	Products  []ProductSummary `json:"products"`
}

type PurchasingService interface {
	// BuildPurchasingList derives the maker-grouped shopping list from all
	// open supplier-sourced (or undecided) order items joined with live HQ
	// stock. On query failure the result is empty, never partial.
	BuildPurchasingList() ([]MakerGroup, error)
}

type purchasingService struct {
	orderRepo repository.OrderRepository
	invRepo   repository.InventoryRepository
	resolver  *AssignmentResolver
	collator  *collate.Collator
}

func NewPurchasingService(oRepo repository.OrderRepository, iRepo repository.InventoryRepository, resolver *AssignmentResolver) PurchasingService {
	return &purchasingService{
		orderRepo: oRepo,
		invRepo:   iRepo,
		resolver:  resolver,
		collator:  collate.New(language.Japanese),
	}
}

// CheckKeyFor builds the stable identifying key of a (product, store) pair
func CheckKeyFor(productID uuid.UUID, storeCode string) string {
	return fmt.Sprintf("%s_%s", productID, storeCode)
}

// AllStoresChecked reports whether every per-store key of the product is in
// the caller-supplied checked set. The set is request-scoped view state; it
// is never persisted and never feeds back into order lifecycle state.
func AllStoresChecked(p ProductSummary, checked map[string]bool) bool {
	for _, s := range p.Stores {
		if !checked[s.CheckKey] {
			return false
		}
	}
	return true
}

func (s *purchasingService) BuildPurchasingList() ([]MakerGroup, error) {
	items, err := s.orderRepo.FindOpenSupplierItems()
	if err != nil {
		return nil, err
	}
	inventory, err := s.invRepo.FindAll()
	if err != nil {
		return nil, err
	}

	stockByProduct := make(map[uuid.UUID]int, len(inventory))
	for _, inv := range inventory {
		stockByProduct[inv.ProductID] = inv.Quantity
	}

	// Group by product, keeping a per-store breakdown with store codes
	// unique within each product entry
	var summaries []ProductSummary
	index := make(map[uuid.UUID]int)
	for _, item := range items {
		storeName, storeCode, orderNumber := "", "", ""
		if item.Order != nil {
			orderNumber = item.Order.OrderNumber
			if item.Order.Store != nil {
				storeName = item.Order.Store.StoreName
				storeCode = item.Order.Store.StoreCode
			}
		}

		if i, ok := index[item.ProductID]; ok {
			summaries[i].TotalQuantity += item.Quantity
			merged := false
			for j := range summaries[i].Stores {
				if summaries[i].Stores[j].StoreCode == storeCode {
					summaries[i].Stores[j].Quantity += item.Quantity
					merged = true
					break
				}
			}
			if !merged {
				summaries[i].Stores = append(summaries[i].Stores, StoreEntry{
					StoreName:   storeName,
					StoreCode:   storeCode,
					OrderNumber: orderNumber,
					Quantity:    item.Quantity,
					CheckKey:    CheckKeyFor(item.ProductID, storeCode),
				})
			}
			continue
		}

		summary := ProductSummary{
			ProductID: item.ProductID,
			MakerID:   unassignedLabel,
			MakerName: unassignedLabel,
			Stores: []StoreEntry{{
				StoreName:   storeName,
				StoreCode:   storeCode,
				OrderNumber: orderNumber,
				Quantity:    item.Quantity,
				CheckKey:    CheckKeyFor(item.ProductID, storeCode),
			}},
			TotalQuantity: item.Quantity,
			HqStock:       stockByProduct[item.ProductID],
		}
		if item.Product != nil {
			summary.ProductCode = item.Product.ProductCode
			summary.ProductName = item.Product.ProductName
			if item.Product.Maker != nil {
				summary.MakerID = item.Product.Maker.ID.String()
				summary.MakerName = item.Product.Maker.MakerName
			}
			if item.Product.Category != nil {
				summary.CategoryName = item.Product.Category.Name
				summary.isExtension = item.Product.Category.IsExtension
			}
			if item.Product.AssignedStaff != nil {
				summary.DefaultStaffName = item.Product.AssignedStaff.Name
			}
		}
		index[item.ProductID] = len(summaries)
		summaries = append(summaries, summary)
	}

	// Assigned staff is a live computation over current HQ stock, re-derived
	// on every refresh
	for i := range summaries {
		staff, err := s.resolver.Resolve([]AssignmentItem{{
			Quantity:    summaries[i].TotalQuantity,
			HqStock:     summaries[i].HqStock,
			IsExtension: summaries[i].isExtension,
		}})
		if err != nil {
			return nil, err
		}
		if staff != nil {
			summaries[i].AssignedStaff = staff.Name
		} else {
			summaries[i].AssignedStaff = unassignedLabel
		}
	}

	// Group by maker, sorted by localized maker name
	var groups []MakerGroup
	groupIndex := make(map[string]int)
	for _, summary := range summaries {
		if i, ok := groupIndex[summary.MakerID]; ok {
			groups[i].Products = append(groups[i].Products, summary)
			continue
		}
		groupIndex[summary.MakerID] = len(groups)
		groups = append(groups, MakerGroup{
			MakerID:   summary.MakerID,
			MakerName: summary.MakerName,
			Products:  []ProductSummary{summary},
		})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return s.collator.CompareString(groups[i].MakerName, groups[j].MakerName) < 0
	})

	return groups, nil
}
