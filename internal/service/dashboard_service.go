package service

import (
	"time"

	"go-hq-ordering/internal/model"
	"go-hq-ordering/internal/repository"
)

// DashboardStats is the headquarters overview
type DashboardStats struct {
	PendingOrders    int64 `json:"pending_orders"`
	ProcessingOrders int64 `json:"processing_orders"`
	CompletedToday   int64 `json:"completed_today"`
	LowStockCount    int64 `json:"low_stock_count"`
	TotalStockUnits  int64 `json:"total_stock_units"`
}

type DashboardService interface {
	GetDashboardStats() (*DashboardStats, error)
}

type dashboardService struct {
	orderRepo repository.OrderRepository
	invRepo   repository.InventoryRepository
}

func NewDashboardService(oRepo repository.OrderRepository, iRepo repository.InventoryRepository) DashboardService {
	return &dashboardService{orderRepo: oRepo, invRepo: iRepo}
}

func (s *dashboardService) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats
	var err error

	if stats.PendingOrders, err = s.orderRepo.CountByStatus(model.OrderStatusPending); err != nil {
		return nil, err
	}
	if stats.ProcessingOrders, err = s.orderRepo.CountByStatus(model.OrderStatusProcessing); err != nil {
		return nil, err
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if stats.CompletedToday, err = s.orderRepo.CountCompletedSince(startOfDay); err != nil {
		return nil, err
	}

	if stats.LowStockCount, err = s.invRepo.CountLowStock(); err != nil {
		return nil, err
	}
	if stats.TotalStockUnits, err = s.invRepo.TotalQuantity(); err != nil {
		return nil, err
	}

	return &stats, nil
}
