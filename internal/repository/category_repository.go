package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/restaurant-menu/internal/model"
)

const categoryColumns = "category_id, name, COALESCE(description,''), is_active, created_at"

// CategoryRepo encapsulates all database queries related to categories.
// Categories are append-only: there is no update or delete operation.
type CategoryRepo struct{ DB *sql.DB }

func NewCategoryRepo(db *sql.DB) *CategoryRepo { return &CategoryRepo{DB: db} }

// Create inserts a category and returns its id.  Name uniqueness is
// enforced by the store; a collision is reported as ErrCategoryExists.
func (r *CategoryRepo) Create(ctx context.Context, name, description string) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO categories (name, description) VALUES (?,?)",
		name, description)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, ErrCategoryExists
		}
		return 0, err
	}
	return res.LastInsertId()
}

// GetByID fetches a category by id.  Returns ErrNotFound when absent.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (model.Category, error) {
	var c model.Category
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE category_id = ? LIMIT 1",
		id).Scan(&c.ID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Category{}, ErrNotFound
	}
	return c, err
}

// List returns all categories ordered by name.
func (r *CategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+categoryColumns+" FROM categories ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
