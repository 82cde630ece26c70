package handlers

import (
	"strconv"

	"driveline/internal/apperr"
	applog "driveline/internal/log"
	"driveline/internal/models"
	"driveline/internal/services"
	"driveline/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	Orders *services.OrderService
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.Orders.List()
	if err != nil {
		return fail(c, "order.list", err)
	}
	return c.JSON(out)
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, "order.get", apperr.Validation("invalid order id"))
	}
	o, err := h.Orders.Get(id)
	if err != nil {
		return fail(c, "order.get", err)
	}
	return c.JSON(o)
}

func (h *OrderHandler) ListByCustomer(c *fiber.Ctx) error {
	customerID, ok := validate.ID(c.Params("customerId"))
	if !ok {
		return fail(c, "order.list.customer", apperr.Validation("invalid customer id"))
	}
	out, err := h.Orders.ListByCustomer(customerID)
	if err != nil {
		return fail(c, "order.list.customer", err)
	}
	return c.JSON(out)
}

func (h *OrderHandler) ListByStatus(c *fiber.Ctx) error {
	out, err := h.Orders.ListByStatus(c.Params("status"))
	if err != nil {
		return fail(c, "order.list.status", err)
	}
	return c.JSON(out)
}

// Filter narrows the listing by any combination of customerId, status, and
// customerName (substring).
func (h *OrderHandler) Filter(c *fiber.Ctx) error {
	var f models.OrderFilter
	if v := c.Query("customerId"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fail(c, "order.filter", apperr.Validation("invalid customerId"))
		}
		f.CustomerID = &n
	}
	if v := c.Query("status"); v != "" {
		f.Status = &v
	}
	if v := c.Query("customerName"); v != "" {
		f.CustomerName = &v
	}
	out, err := h.Orders.ListFiltered(f)
	if err != nil {
		return fail(c, "order.filter", err)
	}
	return c.JSON(out)
}

func (h *OrderHandler) TotalByCustomer(c *fiber.Ctx) error {
	customerID, ok := validate.ID(c.Params("customerId"))
	if !ok {
		return fail(c, "order.total", apperr.Validation("invalid customer id"))
	}
	total, err := h.Orders.TotalByCustomer(customerID)
	if err != nil {
		return fail(c, "order.total", err)
	}
	return c.JSON(total)
}

func (h *OrderHandler) CountByStatus(c *fiber.Ctx) error {
	n, err := h.Orders.CountByStatus(c.Params("status"))
	if err != nil {
		return fail(c, "order.count", err)
	}
	return c.JSON(n)
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var o models.Order
	if err := c.BodyParser(&o); err != nil {
		return fail(c, "order.create", apperr.Validation("malformed order body"))
	}
	created, err := h.Orders.Create(o)
	if err != nil {
		return fail(c, "order.create", err)
	}
	applog.Audit(c, "order.create", map[string]any{"id": created.ID, "customer": created.CustomerID})
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, "order.delete", apperr.Validation("invalid order id"))
	}
	if err := h.Orders.Delete(id); err != nil {
		return fail(c, "order.delete", err)
	}
	applog.Audit(c, "order.delete", map[string]any{"id": id})
	return c.JSON(fiber.Map{"deleted": id})
}
