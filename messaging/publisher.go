package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"telia-restaurant/models"
)

const ordersExchange = "orders_topic"

type orderCreatedEvent struct {
	OrderID      string             `json:"order_id"`
	OrderNumber  string             `json:"order_number"`
	CustomerName string             `json:"customer_name"`
	PhoneNumber  string             `json:"phone_number"`
	TotalAmount  float64            `json:"total_amount"`
	Status       string             `json:"status"`
	Items        []models.OrderItem `json:"items"`
	CreatedAt    time.Time          `json:"created_at"`
}

// Publisher announces created orders on a RabbitMQ topic exchange so the
// kitchen display can pick them up. Checkout never depends on it.
type Publisher struct {
	mu      sync.Mutex
	url     string
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewPublisher(url string) (*Publisher, error) {
	p := &Publisher{url: url}
	if err := p.connect(); err != nil {
		return nil, fmt.Errorf("failed to establish initial connection: %w", err)
	}
	return p, nil
}

func (p *Publisher) connect() error {
	conn, err := amqp091.Dial(p.url)
	if err != nil {
		return err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return err
	}

	if err := channel.ExchangeDeclare(ordersExchange, "topic", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return err
	}

	p.conn = conn
	p.channel = channel
	log.Println("RabbitMQ connected")
	return nil
}

// PublishOrderCreated emits one persistent message per submitted order,
// routed by kitchen.order.created.
func (p *Publisher) PublishOrderCreated(ctx context.Context, o *models.Order) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		if err := p.connect(); err != nil {
			return fmt.Errorf("failed to reconnect: %w", err)
		}
	}

	body, err := json.Marshal(orderCreatedEvent{
		OrderID:      o.ID,
		OrderNumber:  o.OrderNumber,
		CustomerName: o.CustomerName,
		PhoneNumber:  o.PhoneNumber,
		TotalAmount:  o.TotalAmount,
		Status:       o.Status,
		Items:        o.Items,
		CreatedAt:    o.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(ctx, ordersExchange, "kitchen.order.created", false, false,
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
