package handler

import (
	"errors"

	"go-hq-ordering/internal/model"
	"go-hq-ordering/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	products, err := h.service.ListInventory()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(products)
}

type movementRequest struct {
	ChangeType string `json:"change_type"`
	Quantity   int    `json:"quantity"`
	Reason     string `json:"reason"`
}

func (h *InventoryHandler) CreateMovement(c *fiber.Ctx) error {
	productID, err := parseUUID(c.Params("productId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req movementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	inv, err := h.service.ApplyMovement(productID, model.ChangeType(req.ChangeType), req.Quantity, req.Reason)
	if err != nil {
		if errors.Is(err, service.ErrQuantityNotPositive) ||
			errors.Is(err, service.ErrNegativeAdjust) ||
			errors.Is(err, service.ErrUnknownChangeType) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Movement applied", "data": inv})
}

func (h *InventoryHandler) GetAlerts(c *fiber.Ctx) error {
	alerts, err := h.service.ListLowStock()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(alerts)
}
