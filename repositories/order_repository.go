package repositories

import (
	"context"

	"telia-restaurant/config"
	"telia-restaurant/models"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create inserts the order row and its items in one transaction, so an
// order can never exist half-written. The database assigns id,
// order_number and created_at; they are written back into o.
func (r *OrderRepository) Create(ctx context.Context, o *models.Order) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO orders (customer_id, customer_name, customer_email, phone_number,
		                     delivery_address, notes, total_amount, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, order_number, created_at`,
		o.CustomerID, o.CustomerName, o.CustomerEmail, o.PhoneNumber,
		o.DeliveryAddress, o.Notes, o.TotalAmount, o.Status).
		Scan(&o.ID, &o.OrderNumber, &o.CreatedAt)
	if err != nil {
		return err
	}

	for i := range o.Items {
		item := &o.Items[i]
		item.OrderID = o.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO order_items (order_id, item_name, item_category, quantity, unit_price, total_price)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			item.OrderID, item.ItemName, item.ItemCategory, item.Quantity, item.UnitPrice, item.TotalPrice).
			Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// List returns orders newest-first with their items attached. An empty or
// "all" status means no filter; any other value filters exactly.
func (r *OrderRepository) List(ctx context.Context, status string) ([]models.Order, error) {
	query := `SELECT id, order_number, customer_id, customer_name, customer_email, phone_number,
	                 delivery_address, notes, total_amount, status, created_at
	          FROM orders`
	args := []interface{}{}

	if status != "" && status != models.OrderStatusAll {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, &models.RemoteQueryError{Op: "list orders", Err: err}
	}
	defer rows.Close()

	orders := []models.Order{}
	index := map[string]int{}
	ids := []string{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.CustomerID, &o.CustomerName,
			&o.CustomerEmail, &o.PhoneNumber, &o.DeliveryAddress, &o.Notes,
			&o.TotalAmount, &o.Status, &o.CreatedAt); err != nil {
			return nil, &models.RemoteQueryError{Op: "scan order", Err: err}
		}
		o.Items = []models.OrderItem{}
		index[o.ID] = len(orders)
		ids = append(ids, o.ID)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.RemoteQueryError{Op: "list orders", Err: err}
	}

	if len(ids) == 0 {
		return orders, nil
	}

	itemRows, err := config.DB.Query(ctx,
		`SELECT id, order_id, item_name, item_category, quantity, unit_price, total_price
		 FROM order_items WHERE order_id = ANY($1)`, ids)
	if err != nil {
		return nil, &models.RemoteQueryError{Op: "list order items", Err: err}
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item models.OrderItem
		if err := itemRows.Scan(&item.ID, &item.OrderID, &item.ItemName, &item.ItemCategory,
			&item.Quantity, &item.UnitPrice, &item.TotalPrice); err != nil {
			return nil, &models.RemoteQueryError{Op: "scan order item", Err: err}
		}
		if i, ok := index[item.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	return orders, itemRows.Err()
}

// UpdateStatus sets the status field unconditionally. Any enum value is
// accepted from any current value; membership is checked by the caller.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID, status string) error {
	tag, err := config.DB.Exec(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2`, status, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrOrderNotFound
	}
	return nil
}
