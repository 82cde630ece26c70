package repos

import (
	"database/sql"

	"driveline/internal/domain"
	"driveline/internal/models"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

const orderCols = `id, customer_id, customer_name, status, total_amount, created, last_updated`

func (r *OrderRepo) List() ([]domain.OrderRecord, error) {
	var out []domain.OrderRecord
	err := r.db.Select(&out, `SELECT `+orderCols+` FROM orders ORDER BY id`)
	return out, err
}

func (r *OrderRepo) Get(id int64) (domain.OrderRecord, error) {
	var o domain.OrderRecord
	err := r.db.Get(&o, `SELECT `+orderCols+` FROM orders WHERE id = ?`, id)
	return o, err
}

func (r *OrderRepo) ListByCustomer(customerID int64) ([]domain.OrderRecord, error) {
	var out []domain.OrderRecord
	err := r.db.Select(&out, `SELECT `+orderCols+` FROM orders WHERE customer_id = ? ORDER BY id`, customerID)
	return out, err
}

func (r *OrderRepo) ListByStatus(status string) ([]domain.OrderRecord, error) {
	var out []domain.OrderRecord
	err := r.db.Select(&out, `SELECT `+orderCols+` FROM orders WHERE status = ? ORDER BY id`, status)
	return out, err
}

// ListFiltered applies the optional order filter bag; the customer name
// constraint is a substring match.
func (r *OrderRepo) ListFiltered(f models.OrderFilter) ([]domain.OrderRecord, error) {
	where := `1=1`
	args := []any{}
	if f.CustomerID != nil {
		where += ` AND customer_id = ?`
		args = append(args, *f.CustomerID)
	}
	if f.Status != nil {
		where += ` AND status = ?`
		args = append(args, *f.Status)
	}
	if f.CustomerName != nil {
		where += ` AND customer_name LIKE ?`
		args = append(args, "%"+*f.CustomerName+"%")
	}
	var out []domain.OrderRecord
	err := r.db.Select(&out, `SELECT `+orderCols+` FROM orders WHERE `+where+` ORDER BY id`, args...)
	return out, err
}

// TotalByCustomer sums the order totals for a customer; 0 when none exist.
func (r *OrderRepo) TotalByCustomer(customerID int64) (float64, error) {
	var total float64
	err := r.db.Get(&total, `SELECT COALESCE(SUM(total_amount),0) FROM orders WHERE customer_id = ?`, customerID)
	return total, err
}

func (r *OrderRepo) CountByStatus(status string) (int64, error) {
	var n int64
	err := r.db.Get(&n, `SELECT COUNT(*) FROM orders WHERE status = ?`, status)
	return n, err
}

func (r *OrderRepo) Create(rec domain.OrderRecord) (domain.OrderRecord, error) {
	res, err := r.db.Exec(`
	  INSERT INTO orders(customer_id, customer_name, status, total_amount, created, last_updated)
	  VALUES (?,?,?,?,CURRENT_TIMESTAMP,CURRENT_TIMESTAMP)`,
		rec.CustomerID, rec.CustomerName, rec.Status, rec.TotalAmount)
	if err != nil {
		return domain.OrderRecord{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.OrderRecord{}, err
	}
	return r.Get(id)
}

func (r *OrderRepo) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ---------- Order items / cart lines ----------

const itemCols = `id, order_id, customer_id, vehicle_id, quantity, price, status, created, last_updated`

// CartItems returns the in-cart subset for a customer: items whose status is
// still the "Created" sentinel.
func (r *OrderRepo) CartItems(customerID int64) ([]domain.OrderItemRecord, error) {
	var out []domain.OrderItemRecord
	err := r.db.Select(&out, `
	  SELECT `+itemCols+` FROM order_items
	  WHERE customer_id = ? AND status = ?
	  ORDER BY id`, customerID, domain.ItemStatusCreated)
	return out, err
}

func (r *OrderRepo) GetItem(id int64) (domain.OrderItemRecord, error) {
	var it domain.OrderItemRecord
	err := r.db.Get(&it, `SELECT `+itemCols+` FROM order_items WHERE id = ?`, id)
	return it, err
}

func (r *OrderRepo) CreateItem(rec domain.OrderItemRecord) (domain.OrderItemRecord, error) {
	res, err := r.db.Exec(`
	  INSERT INTO order_items(order_id, customer_id, vehicle_id, quantity, price, status, created, last_updated)
	  VALUES (?,?,?,?,?,?,CURRENT_TIMESTAMP,CURRENT_TIMESTAMP)`,
		rec.OrderID, rec.CustomerID, rec.VehicleID, rec.Quantity, rec.Price, rec.Status)
	if err != nil {
		return domain.OrderItemRecord{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.OrderItemRecord{}, err
	}
	return r.GetItem(id)
}

func (r *OrderRepo) UpdateItem(rec domain.OrderItemRecord) (domain.OrderItemRecord, error) {
	res, err := r.db.Exec(`
	  UPDATE order_items SET
	    order_id=?, customer_id=?, vehicle_id=?, quantity=?, price=?, status=?,
	    last_updated=CURRENT_TIMESTAMP
	  WHERE id=?`,
		rec.OrderID, rec.CustomerID, rec.VehicleID, rec.Quantity, rec.Price, rec.Status, rec.ID)
	if err != nil {
		return domain.OrderItemRecord{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.OrderItemRecord{}, sql.ErrNoRows
	}
	return r.GetItem(rec.ID)
}

func (r *OrderRepo) DeleteItem(id int64) error {
	res, err := r.db.Exec(`DELETE FROM order_items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// AttachCartToOrder flips a customer's cart lines onto a placed order in one
// transaction: status leaves the cart sentinel and order_id is bound.
func (r *OrderRepo) AttachCartToOrder(customerID, orderID int64) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
	  UPDATE order_items
	  SET order_id = ?, status = ?, last_updated = CURRENT_TIMESTAMP
	  WHERE customer_id = ? AND status = ?`,
		orderID, domain.ItemStatusOrdered, customerID, domain.ItemStatusCreated); err != nil {
		return err
	}
	return tx.Commit()
}
