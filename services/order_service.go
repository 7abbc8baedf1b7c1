package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"telia-restaurant/models"
)

// CustomerStore is the slice of the customers table the checkout flow
// needs.
type CustomerStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)
	Create(ctx context.Context, cust *models.Customer) error
}

// OrderStore covers order creation and the admin read/update path.
type OrderStore interface {
	Create(ctx context.Context, o *models.Order) error
	List(ctx context.Context, status string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
}

// Mailer sends the post-checkout confirmation. Best effort only.
type Mailer interface {
	SendOrderConfirmationEmail(toEmail, customerName, orderNumber string, total float64) error
}

// EventPublisher announces a created order to the kitchen. Best effort
// only.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, o *models.Order) error
}

type OrderService struct {
	customers CustomerStore
	orders    OrderStore

	// Both optional; nil disables the notification.
	Mailer    Mailer
	Publisher EventPublisher
}

func NewOrderService(customers CustomerStore, orders OrderStore) *OrderService {
	return &OrderService{customers: customers, orders: orders}
}

// Submit runs the checkout flow: validate locally, resolve or create the
// customer, insert the order with its item snapshots, clear the cart.
// Customer creation is not transactional with the order insert — a
// customer row created here survives a later order failure.
func (s *OrderService) Submit(ctx context.Context, cart *models.Cart, req models.CheckoutRequest) (*models.CheckoutResponse, error) {
	name := strings.TrimSpace(req.CustomerName)
	phone := strings.TrimSpace(req.PhoneNumber)
	email := strings.TrimSpace(req.CustomerEmail)

	lines := cart.Lines()
	if len(lines) == 0 {
		return nil, models.ErrEmptyCart
	}
	if name == "" || phone == "" {
		return nil, models.ErrMissingCustomerInfo
	}

	customer, err := s.resolveCustomer(ctx, name, email, phone, req.DeliveryAddress)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		CustomerID:   customer.ID,
		CustomerName: name,
		PhoneNumber:  phone,
		TotalAmount:  cart.Total(),
		Status:       models.OrderStatusPending,
	}
	if email != "" {
		order.CustomerEmail = &email
	}
	if addr := strings.TrimSpace(req.DeliveryAddress); addr != "" {
		order.DeliveryAddress = &addr
	}
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		order.Notes = &notes
	}

	for _, line := range lines {
		order.Items = append(order.Items, models.OrderItem{
			ItemName:     line.Name,
			ItemCategory: line.Category,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice,
			TotalPrice:   line.UnitPrice * float64(line.Quantity),
		})
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, &models.OrderSubmissionError{Step: "create order", Err: err}
	}

	cart.Clear()
	s.notify(ctx, order)

	return &models.CheckoutResponse{ID: order.ID, OrderNumber: order.OrderNumber}, nil
}

// resolveCustomer reuses an existing record on exact email match and
// creates one otherwise.
func (s *OrderService) resolveCustomer(ctx context.Context, name, email, phone, address string) (*models.Customer, error) {
	if email != "" {
		existing, err := s.customers.FindByEmail(ctx, email)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, models.ErrCustomerNotFound) {
			return nil, &models.OrderSubmissionError{Step: "find customer", Err: err}
		}
	}

	cust := &models.Customer{Name: name, Phone: phone}
	if email != "" {
		cust.Email = &email
	}
	if addr := strings.TrimSpace(address); addr != "" {
		cust.Address = &addr
	}
	if err := s.customers.Create(ctx, cust); err != nil {
		return nil, &models.OrderSubmissionError{Step: "create customer", Err: err}
	}
	return cust, nil
}

func (s *OrderService) notify(ctx context.Context, order *models.Order) {
	if s.Mailer != nil && order.CustomerEmail != nil {
		if err := s.Mailer.SendOrderConfirmationEmail(*order.CustomerEmail,
			order.CustomerName, order.OrderNumber, order.TotalAmount); err != nil {
			log.Printf("Failed to send confirmation email for %s: %v", order.OrderNumber, err)
		}
	}
	if s.Publisher != nil {
		if err := s.Publisher.PublishOrderCreated(ctx, order); err != nil {
			log.Printf("Failed to publish order created event for %s: %v", order.OrderNumber, err)
		}
	}
}

// ListOrders returns orders newest-first, optionally narrowed to one
// status. "all" (or empty) lists everything.
func (s *OrderService) ListOrders(ctx context.Context, statusFilter string) ([]models.Order, error) {
	if statusFilter != "" && statusFilter != models.OrderStatusAll && !models.IsValidOrderStatus(statusFilter) {
		return nil, models.ErrInvalidOrderStatus
	}
	return s.orders.List(ctx, statusFilter)
}

// SetStatus updates an order's status to any value in the closed
// enumeration. There is no transition graph; any value is reachable from
// any other.
func (s *OrderService) SetStatus(ctx context.Context, orderID, status string) error {
	if !models.IsValidOrderStatus(status) {
		return models.ErrInvalidOrderStatus
	}
	return s.orders.UpdateStatus(ctx, orderID, status)
}
