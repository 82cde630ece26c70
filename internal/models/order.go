package models

import "driveline/internal/domain"

type Order struct {
	ID           int64   `json:"id"`
	CustomerID   int64   `json:"customerId"`
	CustomerName string  `json:"customerName,omitempty"`
	Status       string  `json:"status"`
	TotalAmount  float64 `json:"totalAmount"`
	Created      string  `json:"created,omitempty"`
	LastUpdated  string  `json:"lastUpdated,omitempty"`
}

func OrderFromRecord(rec domain.OrderRecord) Order {
	return Order{
		ID:           rec.ID,
		CustomerID:   rec.CustomerID,
		CustomerName: rec.CustomerName,
		Status:       rec.Status,
		TotalAmount:  rec.TotalAmount,
		Created:      rec.Created,
		LastUpdated:  rec.LastUpdated,
	}
}

func (o Order) Record() domain.OrderRecord {
	return domain.OrderRecord{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
		Status:       o.Status,
		TotalAmount:  o.TotalAmount,
		Created:      o.Created,
		LastUpdated:  o.LastUpdated,
	}
}

func OrdersFromRecords(recs []domain.OrderRecord) []Order {
	out := make([]Order, 0, len(recs))
	for _, rec := range recs {
		out = append(out, OrderFromRecord(rec))
	}
	return out
}

type OrderItem struct {
	ID          int64   `json:"id"`
	OrderID     int64   `json:"orderId,omitempty"`
	CustomerID  int64   `json:"customerId"`
	VehicleID   int64   `json:"vehicleId"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	Created     string  `json:"created,omitempty"`
	LastUpdated string  `json:"lastUpdated,omitempty"`
}

func OrderItemFromRecord(rec domain.OrderItemRecord) OrderItem {
	return OrderItem{
		ID:          rec.ID,
		OrderID:     rec.OrderID,
		CustomerID:  rec.CustomerID,
		VehicleID:   rec.VehicleID,
		Quantity:    rec.Quantity,
		Price:       rec.Price,
		Status:      rec.Status,
		Created:     rec.Created,
		LastUpdated: rec.LastUpdated,
	}
}

func (i OrderItem) Record() domain.OrderItemRecord {
	return domain.OrderItemRecord{
		ID:          i.ID,
		OrderID:     i.OrderID,
		CustomerID:  i.CustomerID,
		VehicleID:   i.VehicleID,
		Quantity:    i.Quantity,
		Price:       i.Price,
		Status:      i.Status,
		Created:     i.Created,
		LastUpdated: i.LastUpdated,
	}
}

func OrderItemsFromRecords(recs []domain.OrderItemRecord) []OrderItem {
	out := make([]OrderItem, 0, len(recs))
	for _, rec := range recs {
		out = append(out, OrderItemFromRecord(rec))
	}
	return out
}
