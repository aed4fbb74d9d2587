package handler

import (
	"go-hq-ordering/internal/model"
	"go-hq-ordering/internal/repository"
	"go-hq-ordering/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// MasterHandler serves the reference-entity screens: stores, staff, makers,
// categories. These entities have no behavior beyond identity and display
// ordering, so the handlers talk to the repositories directly.
type MasterHandler struct {
	storeRepo    repository.StoreRepository
	staffRepo    repository.StaffRepository
	makerRepo    repository.MakerRepository
	categoryRepo repository.CategoryRepository
}

func NewMasterHandler(
	storeRepo repository.StoreRepository,
	staffRepo repository.StaffRepository,
	makerRepo repository.MakerRepository,
	categoryRepo repository.CategoryRepository,
) *MasterHandler {
	return &MasterHandler{
		storeRepo:    storeRepo,
		staffRepo:    staffRepo,
		makerRepo:    makerRepo,
		categoryRepo: categoryRepo,
	}
}

// ---- Stores ----

func (h *MasterHandler) GetStores(c *fiber.Ctx) error {
	stores, err := h.storeRepo.FindAll(c.QueryBool("active_only", false))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(stores)
}

func (h *MasterHandler) CreateStore(c *fiber.Ctx) error {
	var store model.Store
	if err := c.BodyParser(&store); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&store); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.FirstError(errs)})
	}
	store.IsActive = true
	if err := h.storeRepo.Create(&store); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Store created", "data": store})
}

func (h *MasterHandler) UpdateStore(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid store ID"})
	}

	existing, err := h.storeRepo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Store not found"})
	}

	var req model.Store
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	existing.StoreCode = req.StoreCode
	existing.StoreName = req.StoreName
	existing.IsActive = req.IsActive
	if err := h.storeRepo.Update(existing); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Store updated", "data": existing})
}

// ---- Staff ----

func (h *MasterHandler) GetStaff(c *fiber.Ctx) error {
	staff, err := h.staffRepo.FindAll(c.QueryBool("active_only", false))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(staff)
}

func (h *MasterHandler) CreateStaff(c *fiber.Ctx) error {
	var staff model.Staff
	if err := c.BodyParser(&staff); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&staff); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.FirstError(errs)})
	}
	staff.IsActive = true
	if err := h.staffRepo.Create(&staff); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Staff created", "data": staff})
}

func (h *MasterHandler) UpdateStaff(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid staff ID"})
	}

	existing, err := h.staffRepo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Staff not found"})
	}

	var req model.Staff
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.Role = req.Role
	existing.IsHqFulfillmentLead = req.IsHqFulfillmentLead
	existing.IsExtensionFallback = req.IsExtensionFallback
	existing.IsActive = req.IsActive
	if err := h.staffRepo.Update(existing); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Staff updated", "data": existing})
}

// ---- Makers ----

func (h *MasterHandler) GetMakers(c *fiber.Ctx) error {
	makers, err := h.makerRepo.FindAll(c.QueryBool("active_only", false))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(makers)
}

func (h *MasterHandler) CreateMaker(c *fiber.Ctx) error {
	var maker model.Maker
	if err := c.BodyParser(&maker); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&maker); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.FirstError(errs)})
	}
	maker.IsActive = true
	if err := h.makerRepo.Create(&maker); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Maker created", "data": maker})
}

func (h *MasterHandler) UpdateMaker(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid maker ID"})
	}

	existing, err := h.makerRepo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Maker not found"})
	}

	var req model.Maker
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	existing.GroupCode = req.GroupCode
	existing.MakerName = req.MakerName
	existing.OrderCategory = req.OrderCategory
	existing.MinimumOrder = req.MinimumOrder
	existing.IsActive = req.IsActive
	if err := h.makerRepo.Update(existing); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Maker updated", "data": existing})
}

// ---- Categories ----

func (h *MasterHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.categoryRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(categories)
}

func (h *MasterHandler) CreateCategory(c *fiber.Ctx) error {
	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&category); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.FirstError(errs)})
	}
	if err := h.categoryRepo.Create(&category); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Category created", "data": category})
}

func (h *MasterHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	existing, err := h.categoryRepo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Category not found"})
	}

	var req model.Category
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.SortOrder = req.SortOrder
	existing.IsExtension = req.IsExtension
	if err := h.categoryRepo.Update(existing); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Category updated", "data": existing})
}
