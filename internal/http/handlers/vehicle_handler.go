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

type VehicleHandler struct {
	Catalog *services.CatalogService
}

func (h *VehicleHandler) List(c *fiber.Ctx) error {
	out, err := h.Catalog.ListInStock()
	if err != nil {
		return fail(c, "vehicle.list", err)
	}
	return c.JSON(out)
}

func (h *VehicleHandler) ListNew(c *fiber.Ctx) error {
	out, err := h.Catalog.ListByCondition("New")
	if err != nil {
		return fail(c, "vehicle.list.new", err)
	}
	return c.JSON(out)
}

func (h *VehicleHandler) ListUsed(c *fiber.Ctx) error {
	out, err := h.Catalog.ListByCondition("Used")
	if err != nil {
		return fail(c, "vehicle.list.used", err)
	}
	return c.JSON(out)
}

func (h *VehicleHandler) ListSold(c *fiber.Ctx) error {
	out, err := h.Catalog.ListSold()
	if err != nil {
		return fail(c, "vehicle.list.sold", err)
	}
	return c.JSON(out)
}

func (h *VehicleHandler) ListFeatured(c *fiber.Ctx) error {
	out, err := h.Catalog.ListFeatured()
	if err != nil {
		return fail(c, "vehicle.list.featured", err)
	}
	return c.JSON(out)
}

func (h *VehicleHandler) ListByMake(c *fiber.Ctx) error {
	out, err := h.Catalog.ListByMake(c.Params("make"))
	if err != nil {
		return fail(c, "vehicle.list.make", err)
	}
	return c.JSON(out)
}

func (h *VehicleHandler) Makes(c *fiber.Ctx) error {
	out, err := h.Catalog.DistinctMakes()
	if err != nil {
		return fail(c, "vehicle.makes", err)
	}
	return c.JSON(out)
}

func (h *VehicleHandler) Models(c *fiber.Ctx) error {
	out, err := h.Catalog.DistinctModels(c.Params("make"))
	if err != nil {
		return fail(c, "vehicle.models", err)
	}
	return c.JSON(out)
}

func (h *VehicleHandler) Status(c *fiber.Ctx) error {
	st, err := h.Catalog.Status()
	if err != nil {
		return fail(c, "vehicle.status", err)
	}
	return c.JSON(st)
}

func (h *VehicleHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, "vehicle.get", apperr.Validation("invalid vehicle id"))
	}
	v, err := h.Catalog.Get(id)
	if err != nil {
		return fail(c, "vehicle.get", err)
	}
	return c.JSON(v)
}

func (h *VehicleHandler) Search(c *fiber.Ctx) error {
	var f models.VehicleFilter
	if err := c.BodyParser(&f); err != nil {
		return fail(c, "vehicle.search", apperr.Validation("malformed filter body"))
	}
	out, err := h.Catalog.Search(f)
	if err != nil {
		return fail(c, "vehicle.search", err)
	}
	return c.JSON(out)
}

// Grouped buckets the full catalog by category for the storefront landing page.
func (h *VehicleHandler) Grouped(c *fiber.Ctx) error {
	out, err := h.Catalog.ListGroupedByCategory()
	if err != nil {
		return fail(c, "vehicle.grouped", err)
	}
	return c.JSON(out)
}

// Inventory is the query-parameter rendition of the same filter contract.
func (h *VehicleHandler) Inventory(c *fiber.Ctx) error {
	f, err := filterFromQuery(c)
	if err != nil {
		return fail(c, "vehicle.inventory", err)
	}
	out, err := h.Catalog.Search(f)
	if err != nil {
		return fail(c, "vehicle.inventory", err)
	}
	return c.JSON(out)
}

func (h *VehicleHandler) Create(c *fiber.Ctx) error {
	var v models.Vehicle
	if err := c.BodyParser(&v); err != nil {
		return fail(c, "vehicle.create", apperr.Validation("malformed vehicle body"))
	}
	if _, ok := validate.VIN(v.VIN); !ok {
		return fail(c, "vehicle.create", apperr.Validation("invalid vin"))
	}
	created, err := h.Catalog.Create(v)
	if err != nil {
		return fail(c, "vehicle.create", err)
	}
	applog.Audit(c, "vehicle.create", map[string]any{"id": created.ID, "make": created.Make, "model": created.Model})
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *VehicleHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, "vehicle.update", apperr.Validation("invalid vehicle id"))
	}
	var patch models.VehiclePatch
	if err := c.BodyParser(&patch); err != nil {
		return fail(c, "vehicle.update", apperr.Validation("malformed vehicle body"))
	}
	updated, err := h.Catalog.Update(id, patch)
	if err != nil {
		return fail(c, "vehicle.update", err)
	}
	applog.Audit(c, "vehicle.update", map[string]any{"id": updated.ID})
	return c.JSON(updated)
}

func (h *VehicleHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, "vehicle.delete", apperr.Validation("invalid vehicle id"))
	}
	if err := h.Catalog.Delete(id); err != nil {
		return fail(c, "vehicle.delete", err)
	}
	applog.Audit(c, "vehicle.delete", map[string]any{"id": id})
	return c.JSON(fiber.Map{"deleted": id})
}

func filterFromQuery(c *fiber.Ctx) (models.VehicleFilter, error) {
	var f models.VehicleFilter
	str := func(key string) *string {
		if v := c.Query(key); v != "" {
			return &v
		}
		return nil
	}
	intp := func(key string) (*int, error) {
		v := c.Query(key)
		if v == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, apperr.Validation("invalid " + key)
		}
		return &n, nil
	}
	floatp := func(key string) (*float64, error) {
		v := c.Query(key)
		if v == "" {
			return nil, nil
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, apperr.Validation("invalid " + key)
		}
		return &n, nil
	}

	var err error
	f.Make = str("make")
	f.Model = str("model")
	f.FuelType = str("fuelType")
	f.Transmission = str("transmission")
	f.Condition = str("condition")
	f.Status = str("status")
	if f.YearMin, err = intp("yearMin"); err != nil {
		return f, err
	}
	if f.YearMax, err = intp("yearMax"); err != nil {
		return f, err
	}
	if f.MileageMax, err = intp("mileageMax"); err != nil {
		return f, err
	}
	if f.PriceMin, err = floatp("priceMin"); err != nil {
		return f, err
	}
	if f.PriceMax, err = floatp("priceMax"); err != nil {
		return f, err
	}
	return f, nil
}
