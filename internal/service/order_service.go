package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"go-hq-ordering/internal/model"
	"go-hq-ordering/internal/repository"
	"go-hq-ordering/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrNoItems       = errors.New("order must contain at least one item")
)

// InvalidTransitionError rejects a lifecycle event not allowed from the
// order's current status
type InvalidTransitionError struct {
	From  model.OrderStatus
	Event string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s an order in status %q", e.Event, e.From)
}

// OrphanedOrderError is the critical, non-auto-recoverable failure: the order
// row was created, its items were not, and the compensating delete failed too.
// The named order must be removed manually.
type OrphanedOrderError struct {
	OrderID     uuid.UUID
	ItemsErr    error
	RollbackErr error
}

func (e *OrphanedOrderError) Error() string {
	return fmt.Sprintf("order %s left without items: item insert failed (%v) and rollback delete failed (%v); manual cleanup required",
		e.OrderID, e.ItemsErr, e.RollbackErr)
}

type CreateOrderItemInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"uuid_required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

type CreateOrderInput struct {
	StoreID uuid.UUID              `json:"store_id" validate:"uuid_required"`
	StaffID *uuid.UUID             `json:"staff_id"`
	Notes   string                 `json:"notes"`
	Items   []CreateOrderItemInput `json:"items" validate:"required,min=1,dive"`
}

type OrderService interface {
	CreateOrder(input CreateOrderInput) (*model.Order, error)
	BeginProcessing(id uuid.UUID) (*model.Order, error)
	Complete(id uuid.UUID) (*model.Order, error)
	Cancel(id uuid.UUID) (*model.Order, error)
	GetOrder(id uuid.UUID) (*model.Order, error)
	ListOrders() ([]model.Order, error)
	ListRecent(limit int) ([]model.Order, error)
	DeleteOrders(ids []uuid.UUID) error
}

type orderService struct {
	orderRepo    repository.OrderRepository
	inventorySvc InventoryService
	resolver     *AssignmentResolver
}

func NewOrderService(oRepo repository.OrderRepository, invSvc InventoryService, resolver *AssignmentResolver) OrderService {
	return &orderService{
		orderRepo:    oRepo,
		inventorySvc: invSvc,
		resolver:     resolver,
	}
}

// CreateOrder inserts the order and all its items. Item-insert failure
// triggers a compensating delete of the just-created order; if that delete
// fails as well the caller receives an OrphanedOrderError.
func (s *orderService) CreateOrder(input CreateOrderInput) (*model.Order, error) {
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return nil, errors.New(validator.FirstError(errs))
	}
	if len(input.Items) == 0 {
		return nil, ErrNoItems
	}

	assignmentType := ""
	if input.StaffID != nil {
		assignmentType = model.AssignmentManual
	}

	order := &model.Order{
		StoreID:         input.StoreID,
		Status:          model.OrderStatusPending,
		AssignedStaffID: input.StaffID,
		AssignmentType:  assignmentType,
		Notes:           input.Notes,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	items := make([]model.OrderItem, len(input.Items))
	for i, item := range input.Items {
		items[i] = model.OrderItem{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	if err := s.orderRepo.CreateItems(items); err != nil {
		if delErr := s.orderRepo.Delete(order.ID); delErr != nil {
			return nil, &OrphanedOrderError{
				OrderID:     order.ID,
				ItemsErr:    err,
				RollbackErr: delErr,
			}
		}
		return nil, fmt.Errorf("create order items: %w", err)
	}

	return s.orderRepo.FindByID(order.ID)
}

// BeginProcessing moves a pending order to processing: every item gets its
// fulfillment source from live HQ stock, and staff is auto-assigned unless a
// member was chosen manually at creation.
func (s *orderService) BeginProcessing(id uuid.UUID) (*model.Order, error) {
	order, err := s.loadOrder(id)
	if err != nil {
		return nil, err
	}
	if order.Status != model.OrderStatusPending {
		return nil, &InvalidTransitionError{From: order.Status, Event: "process"}
	}

	type itemDecision struct {
		itemID        uuid.UUID
		fulfilledFrom string
		hqStock       int
	}
	decisions := make([]itemDecision, 0, len(order.Items))
	assignmentItems := make([]AssignmentItem, 0, len(order.Items))
	for _, item := range order.Items {
		stock := 0
		isExtension := false
		if item.Product != nil {
			if item.Product.HqInventory != nil {
				stock = item.Product.HqInventory.Quantity
			}
			if item.Product.Category != nil {
				isExtension = item.Product.Category.IsExtension
			}
		}
		fulfilledFrom := model.FulfilledFromSupplier
		if stock >= item.Quantity {
			fulfilledFrom = model.FulfilledFromHQ
		}
		decisions = append(decisions, itemDecision{
			itemID:        item.ID,
			fulfilledFrom: fulfilledFrom,
			hqStock:       stock,
		})
		assignmentItems = append(assignmentItems, AssignmentItem{
			Quantity:    item.Quantity,
			HqStock:     stock,
			IsExtension: isExtension,
		})
	}

	fields := map[string]interface{}{
		"status": model.OrderStatusProcessing,
	}
	// A manually pre-assigned member is left untouched
	if order.AssignedStaffID == nil {
		staff, err := s.resolver.Resolve(assignmentItems)
		if err != nil {
			return nil, fmt.Errorf("resolve staff assignment: %w", err)
		}
		if staff != nil {
			fields["assigned_staff_id"] = staff.ID
			fields["assignment_type"] = model.AssignmentAuto
		}
	}

	if err := s.orderRepo.UpdateFields(order.ID, fields); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	// Per-item updates are independent: a failed one leaves that item with
	// an undecided fulfillment source and no retry happens here.
	for _, d := range decisions {
		err := s.orderRepo.UpdateItemFields(d.itemID, map[string]interface{}{
			"fulfilled_from":    d.fulfilledFrom,
			"hq_stock_at_order": d.hqStock,
		})
		if err != nil {
			log.Printf("order %s: item %s left without fulfillment source: %v",
				order.OrderNumber, d.itemID, err)
		}
	}

	return s.orderRepo.FindByID(order.ID)
}

// Complete debits HQ stock for every HQ-fulfilled item through the inventory
// ledger, then marks the order completed. Already-applied debits are not
// rolled back when a later item fails, and the status update proceeds
// regardless.
func (s *orderService) Complete(id uuid.UUID) (*model.Order, error) {
	order, err := s.loadOrder(id)
	if err != nil {
		return nil, err
	}
	if order.Status != model.OrderStatusProcessing {
		return nil, &InvalidTransitionError{From: order.Status, Event: "complete"}
	}

	reason := fmt.Sprintf("order completion: %s", order.OrderNumber)
	for _, item := range order.Items {
		if item.FulfilledFrom != model.FulfilledFromHQ {
			continue
		}
		if _, err := s.inventorySvc.ApplyMovement(item.ProductID, model.ChangeOut, item.Quantity, reason); err != nil {
			log.Printf("order %s: stock debit failed for product %s: %v",
				order.OrderNumber, item.ProductID, err)
		}
	}

	now := time.Now()
	err = s.orderRepo.UpdateFields(order.ID, map[string]interface{}{
		"status":       model.OrderStatusCompleted,
		"completed_at": now,
	})
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	return s.orderRepo.FindByID(order.ID)
}

// Cancel is allowed from pending and processing. No stock was reserved or
// decremented before completion, so there are no inventory side effects.
func (s *orderService) Cancel(id uuid.UUID) (*model.Order, error) {
	order, err := s.loadOrder(id)
	if err != nil {
		return nil, err
	}
	if order.IsTerminal() {
		return nil, &InvalidTransitionError{From: order.Status, Event: "cancel"}
	}

	err = s.orderRepo.UpdateFields(order.ID, map[string]interface{}{
		"status": model.OrderStatusCancelled,
	})
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	return s.orderRepo.FindByID(order.ID)
}

func (s *orderService) GetOrder(id uuid.UUID) (*model.Order, error) {
	return s.loadOrder(id)
}

func (s *orderService) ListOrders() ([]model.Order, error) {
	return s.orderRepo.FindAll()
}

func (s *orderService) ListRecent(limit int) ([]model.Order, error) {
	return s.orderRepo.ListRecent(limit)
}

// DeleteOrders removes orders and their items; items go first because the
// store enforces no cascade
func (s *orderService) DeleteOrders(ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.orderRepo.DeleteItemsByOrderIDs(ids); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	if err := s.orderRepo.DeleteByIDs(ids); err != nil {
		return fmt.Errorf("delete orders: %w", err)
	}
	return nil
}

func (s *orderService) loadOrder(id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
