package handler

import (
	"go-hq-ordering/internal/service"

	"github.com/gofiber/fiber/v2"
)

const historyLimit = 100

// HistoryHandler serves the admin history screens: recent orders and
// inventory changes, with bulk delete for cleanup.
type HistoryHandler struct {
	orderSvc     service.OrderService
	inventorySvc service.InventoryService
}

func NewHistoryHandler(orderSvc service.OrderService, inventorySvc service.InventoryService) *HistoryHandler {
	return &HistoryHandler{orderSvc: orderSvc, inventorySvc: inventorySvc}
}

func (h *HistoryHandler) GetOrderHistory(c *fiber.Ctx) error {
	orders, err := h.orderSvc.ListRecent(historyLimit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(orders)
}

func (h *HistoryHandler) DeleteOrderHistory(c *fiber.Ctx) error {
	ids, err := parseUUIDList(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.orderSvc.DeleteOrders(ids); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Orders deleted", "count": len(ids)})
}

func (h *HistoryHandler) GetInventoryHistory(c *fiber.Ctx) error {
	rows, err := h.inventorySvc.ListHistory(historyLimit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(rows)
}

func (h *HistoryHandler) DeleteInventoryHistory(c *fiber.Ctx) error {
	ids, err := parseUUIDList(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.inventorySvc.DeleteHistory(ids); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "History deleted", "count": len(ids)})
}
