package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"telia-restaurant/config"
	"telia-restaurant/models"
)

type MenuRepository struct{}

func NewMenuRepository() *MenuRepository {
	return &MenuRepository{}
}

// ListAvailable returns offerable items, optionally narrowed to one
// category, ordered by name.
func (r *MenuRepository) ListAvailable(ctx context.Context, category string) ([]models.MenuItem, error) {
	query := `SELECT id, name, category, price, description, is_available, created_at, updated_at
	          FROM menu_items WHERE is_available = true`
	args := []interface{}{}

	if category != "" {
		query += " AND category = $1"
		args = append(args, category)
	}
	query += " ORDER BY name ASC"

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, &models.RemoteQueryError{Op: "list menu items", Err: err}
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Price,
			&item.Description, &item.IsAvailable, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, &models.RemoteQueryError{Op: "scan menu item", Err: err}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.RemoteQueryError{Op: "list menu items", Err: err}
	}
	return items, nil
}

func (r *MenuRepository) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := config.DB.Query(ctx,
		`SELECT DISTINCT category FROM menu_items WHERE is_available = true ORDER BY category`)
	if err != nil {
		return nil, &models.RemoteQueryError{Op: "list categories", Err: err}
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var cat string
		if err := rows.Scan(&cat); err != nil {
			return nil, &models.RemoteQueryError{Op: "scan category", Err: err}
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

// GetAvailableByID resolves one offerable item. Unknown and unavailable
// ids both come back as ErrMenuItemNotFound.
func (r *MenuRepository) GetAvailableByID(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := config.DB.QueryRow(ctx,
		`SELECT id, name, category, price, description, is_available, created_at, updated_at
		 FROM menu_items WHERE id = $1 AND is_available = true`, id).
		Scan(&item.ID, &item.Name, &item.Category, &item.Price,
			&item.Description, &item.IsAvailable, &item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrMenuItemNotFound
	}
	if err != nil {
		return nil, &models.RemoteQueryError{Op: "get menu item", Err: err}
	}
	return &item, nil
}

func (r *MenuRepository) Create(ctx context.Context, item *models.MenuItem) error {
	now := time.Now()
	_, err := config.DB.Exec(ctx,
		`INSERT INTO menu_items (id, name, category, price, description, is_available, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, item.Name, item.Category, item.Price, item.Description, item.IsAvailable, now, now)
	if err != nil {
		return err
	}
	item.CreatedAt = now
	item.UpdatedAt = now
	return nil
}

func (r *MenuRepository) Update(ctx context.Context, item *models.MenuItem) error {
	tag, err := config.DB.Exec(ctx,
		`UPDATE menu_items SET name=$1, category=$2, price=$3, description=$4, is_available=$5, updated_at=$6
		 WHERE id=$7`,
		item.Name, item.Category, item.Price, item.Description, item.IsAvailable, time.Now(), item.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrMenuItemNotFound
	}
	return nil
}

// GetByID fetches one item regardless of availability (admin view).
func (r *MenuRepository) GetByID(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := config.DB.QueryRow(ctx,
		`SELECT id, name, category, price, description, is_available, created_at, updated_at
		 FROM menu_items WHERE id = $1`, id).
		Scan(&item.ID, &item.Name, &item.Category, &item.Price,
			&item.Description, &item.IsAvailable, &item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrMenuItemNotFound
	}
	if err != nil {
		return nil, &models.RemoteQueryError{Op: "get menu item", Err: err}
	}
	return &item, nil
}

func (r *MenuRepository) Delete(ctx context.Context, id string) error {
	tag, err := config.DB.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrMenuItemNotFound
	}
	return nil
}
