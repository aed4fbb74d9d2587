package handler

import (
	"errors"

	"go-hq-ordering/internal/model"
	"go-hq-ordering/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListOrders()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(orders)
}

func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	order, err := h.service.GetOrder(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Order not found"})
	}
	return c.JSON(order)
}

func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var input service.CreateOrderInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.CreateOrder(input)
	if err != nil {
		return orderErrorResponse(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Order created", "data": order})
}

func (h *OrderHandler) ProcessOrder(c *fiber.Ctx) error {
	return h.transition(c, h.service.BeginProcessing, "Order processing started")
}

func (h *OrderHandler) CompleteOrder(c *fiber.Ctx) error {
	return h.transition(c, h.service.Complete, "Order completed")
}

func (h *OrderHandler) CancelOrder(c *fiber.Ctx) error {
	return h.transition(c, h.service.Cancel, "Order cancelled")
}

func (h *OrderHandler) transition(c *fiber.Ctx, fn func(id uuid.UUID) (*model.Order, error), message string) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	order, err := fn(id)
	if err != nil {
		return orderErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": message, "data": order})
}

// orderErrorResponse maps lifecycle errors onto status codes. The orphaned
// order case surfaces the record id so an operator can clean it up.
func orderErrorResponse(c *fiber.Ctx, err error) error {
	var orphaned *service.OrphanedOrderError
	if errors.As(err, &orphaned) {
		return c.Status(500).JSON(fiber.Map{
			"error":    err.Error(),
			"order_id": orphaned.OrderID,
			"critical": true,
		})
	}

	var invalid *service.InvalidTransitionError
	if errors.As(err, &invalid) {
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	}

	if errors.Is(err, service.ErrOrderNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(400).JSON(fiber.Map{"error": err.Error()})
}
