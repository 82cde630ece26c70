package handlers

import (
	"strconv"

	"driveline/internal/apperr"
	applog "driveline/internal/log"
	"driveline/internal/models"
	"driveline/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler serves the derived category resource. Nothing here touches
// storage directly: the list is recomputed from vehicle records on every call
// and ids are positions in that computation.
type CategoryHandler struct {
	Catalog *services.CatalogService
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.Catalog.ListCategories()
	if err != nil {
		return fail(c, "category.list", err)
	}
	return c.JSON(out)
}

func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return fail(c, "category.get", apperr.Validation("invalid category id"))
	}
	cat, err := h.Catalog.GetCategory(id)
	if err != nil {
		return fail(c, "category.get", err)
	}
	return c.JSON(cat)
}

// Create accepts and echoes a category without persisting it: the category
// set is derived from vehicle records, so manual entries have nowhere to go.
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var cat models.Category
	if err := c.BodyParser(&cat); err != nil {
		return fail(c, "category.create", apperr.Validation("malformed category body"))
	}
	applog.Info(c, "category.create.noop", map[string]any{"name": cat.Name})
	return c.JSON(cat)
}

// Update mirrors Create: accepted, echoed, not persisted.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var cat models.Category
	if err := c.BodyParser(&cat); err != nil {
		return fail(c, "category.update", apperr.Validation("malformed category body"))
	}
	applog.Info(c, "category.update.noop", map[string]any{"name": cat.Name})
	return c.JSON(cat)
}
