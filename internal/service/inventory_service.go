package service

import (
	"errors"
	"log"

	"go-hq-ordering/internal/model"
	"go-hq-ordering/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrQuantityNotPositive = errors.New("quantity must be a positive integer")
	ErrNegativeAdjust      = errors.New("adjusted quantity must not be negative")
	ErrUnknownChangeType   = errors.New("unknown change type")
)

// AlertSeverity tiers low-stock products by how far below threshold they are
type AlertSeverity string

const (
	SeverityCritical AlertSeverity = "critical" // at or below 25% of threshold
	SeverityWarning  AlertSeverity = "warning"  // at or below 50% of threshold
	SeverityNotice   AlertSeverity = "notice"
)

// LowStockAlert is the read model for the reorder alert list
type LowStockAlert struct {
	Product   model.Product `json:"product"`
	Quantity  int           `json:"quantity"`
	Threshold int           `json:"threshold"`
	Severity  AlertSeverity `json:"severity"`
}

type InventoryService interface {
	// ApplyMovement applies a single stock change and records it. For in/out
	// the quantity is the positive amount moved; for adjust it is the desired
	// absolute new quantity. The returned row reflects the applied change.
	ApplyMovement(productID uuid.UUID, changeType model.ChangeType, quantity int, reason string) (*model.HqInventory, error)
	GetOrCreateInventory(productID uuid.UUID) (*model.HqInventory, error)
	ListInventory() ([]model.Product, error)
	ListLowStock() ([]LowStockAlert, error)
	ListHistory(limit int) ([]model.InventoryHistory, error)
	DeleteHistory(ids []uuid.UUID) error
}

type inventoryService struct {
	productRepo repository.ProductRepository
	invRepo     repository.InventoryRepository
}

func NewInventoryService(pRepo repository.ProductRepository, iRepo repository.InventoryRepository) InventoryService {
	return &inventoryService{
		productRepo: pRepo,
		invRepo:     iRepo,
	}
}

func (s *inventoryService) ApplyMovement(productID uuid.UUID, changeType model.ChangeType, quantity int, reason string) (*model.HqInventory, error) {
	switch changeType {
	case model.ChangeIn, model.ChangeOut:
		if quantity <= 0 {
			return nil, ErrQuantityNotPositive
		}
	case model.ChangeAdjust:
		if quantity < 0 {
			return nil, ErrNegativeAdjust
		}
	default:
		return nil, ErrUnknownChangeType
	}

	inv, err := s.GetOrCreateInventory(productID)
	if err != nil {
		return nil, err
	}

	previous := inv.Quantity
	var newQuantity, delta int
	switch changeType {
	case model.ChangeIn:
		newQuantity = previous + quantity
		delta = quantity
	case model.ChangeOut:
		// Out-movements below zero clamp to zero rather than failing. The
		// recorded delta is the requested amount, not the effective change.
		newQuantity = previous - quantity
		if newQuantity < 0 {
			newQuantity = 0
		}
		delta = -quantity
	case model.ChangeAdjust:
		newQuantity = quantity
		delta = newQuantity - previous
	}

	if err := s.invRepo.UpdateQuantity(inv.ID, newQuantity); err != nil {
		return nil, err
	}
	inv.Quantity = newQuantity

	// History is best-effort audit: a failed append never rolls back the
	// stock change and does not fail the movement.
	history := &model.InventoryHistory{
		ProductID:        productID,
		ChangeType:       changeType,
		Quantity:         delta,
		PreviousQuantity: previous,
		NewQuantity:      newQuantity,
		Reason:           reason,
	}
	if err := s.invRepo.AppendHistory(history); err != nil {
		log.Printf("inventory history append failed for product %s: %v", productID, err)
	}

	return inv, nil
}

// GetOrCreateInventory returns the product's stock row, creating it with
// quantity 0 and the default threshold when absent
func (s *inventoryService) GetOrCreateInventory(productID uuid.UUID) (*model.HqInventory, error) {
	inv, err := s.invRepo.FindByProductID(productID)
	if err == nil {
		return inv, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := &model.HqInventory{
		ProductID: productID,
		Quantity:  0,
		Threshold: model.DefaultThreshold,
	}
	if err := s.invRepo.Create(created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *inventoryService) ListInventory() ([]model.Product, error) {
	return s.productRepo.FindAll(true)
}

func (s *inventoryService) ListLowStock() ([]LowStockAlert, error) {
	products, err := s.productRepo.FindAll(true)
	if err != nil {
		return nil, err
	}

	var alerts []LowStockAlert
	for _, p := range products {
		quantity := 0
		threshold := model.DefaultThreshold
		if p.HqInventory != nil {
			quantity = p.HqInventory.Quantity
			threshold = p.HqInventory.Threshold
		}
		if quantity > threshold {
			continue
		}
		alerts = append(alerts, LowStockAlert{
			Product:   p,
			Quantity:  quantity,
			Threshold: threshold,
			Severity:  severityFor(quantity, threshold),
		})
	}
	return alerts, nil
}

func severityFor(quantity, threshold int) AlertSeverity {
	if threshold <= 0 {
		return SeverityCritical
	}
	ratio := float64(quantity) / float64(threshold)
	if ratio <= 0.25 {
		return SeverityCritical
	}
	if ratio <= 0.5 {
		return SeverityWarning
	}
	return SeverityNotice
}

func (s *inventoryService) ListHistory(limit int) ([]model.InventoryHistory, error) {
	return s.invRepo.ListHistory(limit)
}

func (s *inventoryService) DeleteHistory(ids []uuid.UUID) error {
	return s.invRepo.DeleteHistory(ids)
}
