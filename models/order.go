package models

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"

	// OrderStatusAll is the listing filter sentinel meaning "no filter".
	OrderStatusAll = "all"
)

var orderStatuses = map[string]bool{
	OrderStatusPending:   true,
	OrderStatusConfirmed: true,
	OrderStatusPreparing: true,
	OrderStatusReady:     true,
	OrderStatusDelivered: true,
	OrderStatusCancelled: true,
}

// IsValidOrderStatus reports whether s is one of the closed status values.
// Transitions between statuses are deliberately unconstrained.
func IsValidOrderStatus(s string) bool {
	return orderStatuses[s]
}

type Order struct {
	ID              string      `json:"id"`
	OrderNumber     string      `json:"order_number"`
	CustomerID      string      `json:"customer_id"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   *string     `json:"customer_email,omitempty"`
	PhoneNumber     string      `json:"phone_number"`
	DeliveryAddress *string     `json:"delivery_address,omitempty"`
	Notes           *string     `json:"notes,omitempty"`
	TotalAmount     float64     `json:"total_amount"`
	Status          string      `json:"status"`
	Items           []OrderItem `json:"order_items"`
	CreatedAt       time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID           string  `json:"id"`
	OrderID      string  `json:"order_id"`
	ItemName     string  `json:"item_name"`
	ItemCategory string  `json:"item_category"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	TotalPrice   float64 `json:"total_price"`
}
