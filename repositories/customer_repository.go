package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"telia-restaurant/config"
	"telia-restaurant/models"
)

type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

// FindByEmail looks up a customer by exact email match. No dedup by phone.
func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var cust models.Customer
	err := config.DB.QueryRow(ctx,
		`SELECT id, name, email, phone, address, created_at FROM customers WHERE email = $1`,
		email).Scan(&cust.ID, &cust.Name, &cust.Email, &cust.Phone, &cust.Address, &cust.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cust, nil
}

func (r *CustomerRepository) Create(ctx context.Context, cust *models.Customer) error {
	return config.DB.QueryRow(ctx,
		`INSERT INTO customers (name, email, phone, address) VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		cust.Name, cust.Email, cust.Phone, cust.Address).
		Scan(&cust.ID, &cust.CreatedAt)
}
