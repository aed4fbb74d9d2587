package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Helper to parse a UUID path param
func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// parseUUIDList parses a request body of the form {"ids": [...]}
func parseUUIDList(c *fiber.Ctx) ([]uuid.UUID, error) {
	var body struct {
		IDs []string `json:"ids"`
	}
	if err := c.BodyParser(&body); err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(body.IDs))
	for _, raw := range body.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseCheckedKeys splits the checked query param ("key1,key2,...") into the
// ephemeral purchasing checklist set
func parseCheckedKeys(raw string) map[string]bool {
	checked := make(map[string]bool)
	for _, key := range strings.Split(raw, ",") {
		if key = strings.TrimSpace(key); key != "" {
			checked[key] = true
		}
	}
	return checked
}
