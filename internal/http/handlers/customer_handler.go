package handlers

import (
	"driveline/internal/apperr"
	applog "driveline/internal/log"
	"driveline/internal/models"
	"driveline/internal/services"
	"driveline/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	Customers *services.CustomerService
}

func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.Customers.List()
	if err != nil {
		return fail(c, "customer.list", err)
	}
	return c.JSON(out)
}

func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, "customer.get", apperr.Validation("invalid customer id"))
	}
	cust, err := h.Customers.Get(id)
	if err != nil {
		return fail(c, "customer.get", err)
	}
	return c.JSON(cust)
}

func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var cust models.Customer
	if err := c.BodyParser(&cust); err != nil {
		return fail(c, "customer.create", apperr.Validation("malformed customer body"))
	}
	created, err := h.Customers.Create(cust)
	if err != nil {
		return fail(c, "customer.create", err)
	}
	applog.Audit(c, "customer.create", map[string]any{"id": created.ID})
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, "customer.update", apperr.Validation("invalid customer id"))
	}
	var cust models.Customer
	if err := c.BodyParser(&cust); err != nil {
		return fail(c, "customer.update", apperr.Validation("malformed customer body"))
	}
	updated, err := h.Customers.Update(id, cust)
	if err != nil {
		return fail(c, "customer.update", err)
	}
	applog.Audit(c, "customer.update", map[string]any{"id": id})
	return c.JSON(updated)
}

func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, "customer.delete", apperr.Validation("invalid customer id"))
	}
	if err := h.Customers.Delete(id); err != nil {
		return fail(c, "customer.delete", err)
	}
	applog.Audit(c, "customer.delete", map[string]any{"id": id})
	return c.JSON(fiber.Map{"deleted": id})
}
