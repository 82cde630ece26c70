package services

import (
	"database/sql"
	"errors"

	"driveline/internal/apperr"
	"driveline/internal/domain"
	"driveline/internal/models"
	"driveline/internal/price"
	"driveline/internal/repos"
	"driveline/internal/validate"
)

type OrderService struct {
	Orders   *repos.OrderRepo
	Vehicles *repos.VehicleRepo
}

func NewOrderService(orders *repos.OrderRepo, vehicles *repos.VehicleRepo) *OrderService {
	return &OrderService{Orders: orders, Vehicles: vehicles}
}

func (s *OrderService) List() ([]models.Order, error) {
	recs, err := s.Orders.List()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return models.OrdersFromRecords(recs), nil
}

func (s *OrderService) Get(id int64) (models.Order, error) {
	rec, err := s.Orders.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, apperr.NotFound("order not found")
	}
	if err != nil {
		return models.Order{}, apperr.Internal(err)
	}
	return models.OrderFromRecord(rec), nil
}

func (s *OrderService) ListByCustomer(customerID int64) ([]models.Order, error) {
	recs, err := s.Orders.ListByCustomer(customerID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return models.OrdersFromRecords(recs), nil
}

func (s *OrderService) ListByStatus(status string) ([]models.Order, error) {
	recs, err := s.Orders.ListByStatus(status)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return models.OrdersFromRecords(recs), nil
}

func (s *OrderService) ListFiltered(f models.OrderFilter) ([]models.Order, error) {
	recs, err := s.Orders.ListFiltered(f)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return models.OrdersFromRecords(recs), nil
}

func (s *OrderService) TotalByCustomer(customerID int64) (float64, error) {
	total, err := s.Orders.TotalByCustomer(customerID)
	if err != nil {
		return 0, apperr.Internal(err)
	}
	return total, nil
}

func (s *OrderService) CountByStatus(status string) (int64, error) {
	n, err := s.Orders.CountByStatus(status)
	if err != nil {
		return 0, apperr.Internal(err)
	}
	return n, nil
}

// Create persists an order header. When the customer has cart lines, they are
// attached to the new order and the total is derived from them unless the
// caller supplied one.
func (s *OrderService) Create(o models.Order) (models.Order, error) {
	if o.CustomerID <= 0 {
		return models.Order{}, apperr.Validation("customerId is required")
	}
	rec := o.Record()
	if rec.Status == "" {
		rec.Status = "Placed"
	}

	cart, err := s.Orders.CartItems(rec.CustomerID)
	if err != nil {
		return models.Order{}, apperr.Internal(err)
	}
	if rec.TotalAmount == 0 {
		for _, it := range cart {
			rec.TotalAmount += it.Price * float64(it.Quantity)
		}
	}

	created, err := s.Orders.Create(rec)
	if err != nil {
		return models.Order{}, apperr.Internal(err)
	}
	if len(cart) > 0 {
		if err := s.Orders.AttachCartToOrder(created.CustomerID, created.ID); err != nil {
			return models.Order{}, apperr.Internal(err)
		}
	}
	return models.OrderFromRecord(created), nil
}

func (s *OrderService) Delete(id int64) error {
	err := s.Orders.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("order not found")
	}
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// ---------- Cart (order items with the "Created" status sentinel) ----------

func (s *OrderService) CartItems(customerID int64) ([]models.OrderItem, error) {
	recs, err := s.Orders.CartItems(customerID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return models.OrderItemsFromRecords(recs), nil
}

// AddToCart creates a cart line. Status is forced to the sentinel and the
// price snapshot comes from the vehicle's current (parsed) price so later
// price edits don't reprice carts.
func (s *OrderService) AddToCart(item models.OrderItem) (models.OrderItem, error) {
	if item.CustomerID <= 0 {
		return models.OrderItem{}, apperr.Validation("customerId is required")
	}
	if item.VehicleID <= 0 {
		return models.OrderItem{}, apperr.Validation("vehicleId is required")
	}
	veh, err := s.Vehicles.Get(item.VehicleID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.OrderItem{}, apperr.NotFound("vehicle not found")
	}
	if err != nil {
		return models.OrderItem{}, apperr.Internal(err)
	}

	rec := item.Record()
	rec.OrderID = 0
	rec.Status = domain.ItemStatusCreated
	rec.Quantity = validate.Qty(rec.Quantity)
	if rec.Price == 0 {
		if d, ok := price.Parse(veh.Price); ok {
			rec.Price, _ = d.Float64()
		}
	}

	created, err := s.Orders.CreateItem(rec)
	if err != nil {
		return models.OrderItem{}, apperr.Internal(err)
	}
	return models.OrderItemFromRecord(created), nil
}

// UpdateCartItem changes the quantity of an in-cart line. Lines already
// attached to an order are no longer a cart concern.
func (s *OrderService) UpdateCartItem(id int64, item models.OrderItem) (models.OrderItem, error) {
	rec, err := s.Orders.GetItem(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.OrderItem{}, apperr.NotFound("cart item not found")
	}
	if err != nil {
		return models.OrderItem{}, apperr.Internal(err)
	}
	if rec.Status != domain.ItemStatusCreated {
		return models.OrderItem{}, apperr.Validation("item is no longer in a cart")
	}

	rec.Quantity = validate.Qty(item.Quantity)
	updated, err := s.Orders.UpdateItem(rec)
	if err != nil {
		return models.OrderItem{}, apperr.Internal(err)
	}
	return models.OrderItemFromRecord(updated), nil
}

func (s *OrderService) RemoveCartItem(id int64) error {
	err := s.Orders.DeleteItem(id)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("cart item not found")
	}
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}
