package domain

// Order item status values. A cart is the subset of order items whose status
// is still StatusCreated; placing an order flips them to StatusOrdered.
const (
	ItemStatusCreated = "Created"
	ItemStatusOrdered = "Ordered"
)

// OrderRecord references its customer by id only (weak reference); the
// customer name is denormalized for list filtering.
type OrderRecord struct {
	ID           int64   `db:"id"`
	CustomerID   int64   `db:"customer_id"`
	CustomerName string  `db:"customer_name"`
	Status       string  `db:"status"`
	TotalAmount  float64 `db:"total_amount"`
	Created      string  `db:"created"`
	LastUpdated  string  `db:"last_updated"`
}

// OrderItemRecord doubles as a cart line: OrderID is 0 until the item is
// attached to a placed order.
type OrderItemRecord struct {
	ID          int64   `db:"id"`
	OrderID     int64   `db:"order_id"`
	CustomerID  int64   `db:"customer_id"`
	VehicleID   int64   `db:"vehicle_id"`
	Quantity    int     `db:"quantity"`
	Price       float64 `db:"price"` // snapshot of the parsed vehicle price at add time
	Status      string  `db:"status"`
	Created     string  `db:"created"`
	LastUpdated string  `db:"last_updated"`
}
