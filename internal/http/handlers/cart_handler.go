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

// CartHandler exposes the cart as the order-item subset whose status is still
// "Created". There is no cart table behind this.
type CartHandler struct {
	Orders *services.OrderService
}

// List returns the cart for ?customerId=N; with no customer the cart is
// empty, matching what the storefront expects before login.
func (h *CartHandler) List(c *fiber.Ctx) error {
	v := c.Query("customerId")
	if v == "" {
		return c.JSON([]models.OrderItem{})
	}
	customerID, err := strconv.ParseInt(v, 10, 64)
	if err != nil || customerID < 1 {
		return fail(c, "cart.list", apperr.Validation("invalid customerId"))
	}
	out, err2 := h.Orders.CartItems(customerID)
	if err2 != nil {
		return fail(c, "cart.list", err2)
	}
	return c.JSON(out)
}

func (h *CartHandler) ListByCustomer(c *fiber.Ctx) error {
	customerID, ok := validate.ID(c.Params("customerId"))
	if !ok {
		return fail(c, "cart.list", apperr.Validation("invalid customer id"))
	}
	out, err := h.Orders.CartItems(customerID)
	if err != nil {
		return fail(c, "cart.list", err)
	}
	return c.JSON(out)
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	var item models.OrderItem
	if err := c.BodyParser(&item); err != nil {
		return fail(c, "cart.add", apperr.Validation("malformed cart item body"))
	}
	created, err := h.Orders.AddToCart(item)
	if err != nil {
		return fail(c, "cart.add", err)
	}
	applog.Audit(c, "cart.add", map[string]any{"id": created.ID, "vehicle": created.VehicleID})
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *CartHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, "cart.update", apperr.Validation("invalid cart item id"))
	}
	var item models.OrderItem
	if err := c.BodyParser(&item); err != nil {
		return fail(c, "cart.update", apperr.Validation("malformed cart item body"))
	}
	updated, err := h.Orders.UpdateCartItem(id, item)
	if err != nil {
		return fail(c, "cart.update", err)
	}
	return c.JSON(updated)
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, "cart.remove", apperr.Validation("invalid cart item id"))
	}
	if err := h.Orders.RemoveCartItem(id); err != nil {
		return fail(c, "cart.remove", err)
	}
	applog.Audit(c, "cart.remove", map[string]any{"id": id})
	return c.JSON(fiber.Map{"deleted": id})
}
