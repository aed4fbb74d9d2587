package handler

import (
	"go-hq-ordering/internal/model"
	"go-hq-ordering/internal/repository"
	"go-hq-ordering/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	productRepo repository.ProductRepository
}

func NewProductHandler(productRepo repository.ProductRepository) *ProductHandler {
	return &ProductHandler{productRepo: productRepo}
}

func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.productRepo.FindAll(c.QueryBool("active_only", false))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(products)
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&product); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.FirstError(errs)})
	}

	// Duplicate product code check
	existing, _ := h.productRepo.FindByCode(product.ProductCode)
	if existing != nil && existing.ID != uuid.Nil {
		return c.Status(400).JSON(fiber.Map{"error": "Product code already exists"})
	}

	product.IsActive = true
	if err := h.productRepo.Create(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	existing, err := h.productRepo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
	}

	var req model.Product
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	existing.ProductCode = req.ProductCode
	existing.ProductName = req.ProductName
	existing.Level1 = req.Level1
	existing.Level2 = req.Level2
	existing.Level3 = req.Level3
	existing.Level4 = req.Level4
	existing.Level5 = req.Level5
	existing.Level6 = req.Level6
	existing.Level7 = req.Level7
	existing.Level8 = req.Level8
	existing.UnitPrice = req.UnitPrice
	existing.CostPrice = req.CostPrice
	existing.Supplier = req.Supplier
	existing.Notes = req.Notes
	existing.MakerID = req.MakerID
	existing.CategoryID = req.CategoryID
	existing.AssignedStaffID = req.AssignedStaffID
	existing.TrackHqInventory = req.TrackHqInventory
	existing.IsActive = req.IsActive

	// Avoid writing preloaded relations back
	existing.Maker = nil
	existing.Category = nil
	existing.AssignedStaff = nil
	existing.HqInventory = nil

	if err := h.productRepo.Update(existing); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Product updated", "data": existing})
}

// DeleteProduct soft-deletes: referenced order items must keep resolving
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if _, err := h.productRepo.FindByID(id); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
	}

	if err := h.productRepo.Deactivate(id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Product deactivated"})
}
