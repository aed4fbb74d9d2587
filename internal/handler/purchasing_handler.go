package handler

import (
	"go-hq-ordering/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PurchasingHandler struct {
	service service.PurchasingService
}

func NewPurchasingHandler(s service.PurchasingService) *PurchasingHandler {
	return &PurchasingHandler{service: s}
}

type purchasingProduct struct {
	service.ProductSummary
	FullyHandled bool `json:"fully_handled"`
}

type purchasingGroup struct {
	MakerID   string              `json:"maker_id"`
	MakerName string              `json:"maker_name"`
	Products  []purchasingProduct `json:"products"`
}

// GetPurchasingList returns the maker-grouped purchasing list. The checked
// query param carries the client's checklist keys; completion state lives in
// the client, the server only annotates the response with it.
func (h *PurchasingHandler) GetPurchasingList(c *fiber.Ctx) error {
	groups, err := h.service.BuildPurchasingList()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	checked := parseCheckedKeys(c.Query("checked"))

	response := make([]purchasingGroup, 0, len(groups))
	for _, group := range groups {
		out := purchasingGroup{
			MakerID:   group.MakerID,
			MakerName: group.MakerName,
			Products:  make([]purchasingProduct, 0, len(group.Products)),
		}
		for _, product := range group.Products {
			out.Products = append(out.Products, purchasingProduct{
				ProductSummary: product,
				FullyHandled:   service.AllStoresChecked(product, checked),
			})
		}
		response = append(response, out)
	}

	return c.JSON(response)
}
