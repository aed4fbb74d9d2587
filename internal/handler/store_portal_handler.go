package handler

import (
	"go-hq-ordering/internal/repository"
	"go-hq-ordering/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// StorePortalHandler serves the public per-store order page. No
// authentication by design: the store code in the URL is the whole contract.
type StorePortalHandler struct {
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	orderSvc    service.OrderService
}

func NewStorePortalHandler(storeRepo repository.StoreRepository, productRepo repository.ProductRepository, orderSvc service.OrderService) *StorePortalHandler {
	return &StorePortalHandler{
		storeRepo:   storeRepo,
		productRepo: productRepo,
		orderSvc:    orderSvc,
	}
}

func (h *StorePortalHandler) GetPortal(c *fiber.Ctx) error {
	store, err := h.storeRepo.FindActiveByCode(c.Params("code"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Store not found"})
	}

	products, err := h.productRepo.FindAll(true)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{"store": store, "products": products})
}

type portalOrderRequest struct {
	Notes string `json:"notes"`
	Items []struct {
		ProductID uuid.UUID `json:"product_id"`
		Quantity  int       `json:"quantity"`
	} `json:"items"`
}

func (h *StorePortalHandler) SubmitOrder(c *fiber.Ctx) error {
	store, err := h.storeRepo.FindActiveByCode(c.Params("code"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Store not found"})
	}

	var req portalOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	input := service.CreateOrderInput{
		StoreID: store.ID,
		Notes:   req.Notes,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.CreateOrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.orderSvc.CreateOrder(input)
	if err != nil {
		return orderErrorResponse(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message":      "Order submitted",
		"order_number": order.OrderNumber,
		"data":         order,
	})
}
