package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/restaurant-menu/internal/model"
)

const itemColumns = `m.item_id, m.name, COALESCE(m.description,''), m.price,
	COALESCE(m.category_id,0), m.is_available, m.preparation_time,
	COALESCE(m.ingredients,''), COALESCE(m.allergens,''), COALESCE(m.calories,0),
	m.created_at, m.updated_at`

// CreateItemParams carries the attributes of a new menu item.  CategoryID is
// a weak reference: no existence check is performed against the categories
// relation.
type CreateItemParams struct {
	Name            string
	Description     string
	Price           float64
	CategoryID      int64
	IsAvailable     bool
	PreparationTime int
	Ingredients     string
	Allergens       string
	Calories        int
}

// ItemPatch is a partial update: one optional slot per mutable attribute.
// Only non-nil fields are applied.  Column names are fixed in this package;
// caller input never reaches the SQL text, only the bound arguments.
type ItemPatch struct {
	Name            *string
	Description     *string
	Price           *float64
	CategoryID      *int64
	IsAvailable     *bool
	PreparationTime *int
	Ingredients     *string
	Allergens       *string
	Calories        *int
}

// IsEmpty reports whether the patch carries no field at all.
func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil &&
		p.CategoryID == nil && p.IsAvailable == nil && p.PreparationTime == nil &&
		p.Ingredients == nil && p.Allergens == nil && p.Calories == nil
}

// ItemRepo encapsulates all database queries related to menu items.
type ItemRepo struct{ DB *sql.DB }

func NewItemRepo(db *sql.DB) *ItemRepo { return &ItemRepo{DB: db} }

// Create inserts a menu item and returns its id.  A non-positive
// preparation time falls back to the default of 15 minutes.
func (r *ItemRepo) Create(ctx context.Context, p CreateItemParams) (int64, error) {
	if p.PreparationTime <= 0 {
		p.PreparationTime = 15
	}
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO menu_items
			(name, description, price, category_id, is_available, preparation_time, ingredients, allergens, calories)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		p.Name, p.Description, p.Price, p.CategoryID, p.IsAvailable,
		p.PreparationTime, p.Ingredients, p.Allergens, p.Calories)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByID fetches one item with its category name resolved through a LEFT
// JOIN; the name is empty when the category reference does not resolve.
// Returns ErrNotFound when the item is absent.
func (r *ItemRepo) GetByID(ctx context.Context, id int64) (model.ItemWithCategory, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+itemColumns+`, c.name
		 FROM menu_items m
		 LEFT JOIN categories c ON m.category_id = c.category_id
		 WHERE m.item_id = ? LIMIT 1`, id)
	it, err := scanItemWithCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ItemWithCategory{}, ErrNotFound
	}
	return it, err
}

// List returns every item with its resolved category name, ordered by
// category name then item name.  Items whose category does not resolve sort
// first (sqlite orders NULL lowest ascending).
func (r *ItemRepo) List(ctx context.Context) ([]model.ItemWithCategory, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+itemColumns+`, c.name
		 FROM menu_items m
		 LEFT JOIN categories c ON m.category_id = c.category_id
		 ORDER BY c.name, m.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectItemsWithCategory(rows)
}

// ListByCategory returns the available items of one category, ordered by
// name.  The category id is used directly with no existence check, so a
// dangling id simply yields an empty result.
func (r *ItemRepo) ListByCategory(ctx context.Context, categoryID int64) ([]model.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+itemColumns+`
		 FROM menu_items m
		 WHERE m.category_id = ? AND m.is_available = 1
		 ORDER BY m.name`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.MenuItem{}
	for rows.Next() {
		var it model.MenuItem
		if err := scanItem(rows, &it); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// Search matches term as a case-insensitive literal substring of the item
// name or description, over available items only, ordered by name.  LIKE
// wildcards in the term are escaped so the match stays literal; the empty
// string matches every available item.  Rejecting blank input is the
// transport boundary's concern, not this method's.
func (r *ItemRepo) Search(ctx context.Context, term string) ([]model.ItemWithCategory, error) {
	esc := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
	pattern := "%" + esc + "%"
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+itemColumns+`, c.name
		 FROM menu_items m
		 LEFT JOIN categories c ON m.category_id = c.category_id
		 WHERE (m.name LIKE ? ESCAPE '\' OR m.description LIKE ? ESCAPE '\')
		   AND m.is_available = 1
		 ORDER BY m.name`, pattern, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectItemsWithCategory(rows)
}

// Update applies the patch to one item.  Unsupplied fields keep their prior
// values and updated_at is always refreshed, even for a patch that carries
// no field.  Returns ErrNotFound when no row matched the id.
func (r *ItemRepo) Update(ctx context.Context, id int64, p ItemPatch) error {
	sets := []string{}
	args := []any{}
	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.Price != nil {
		add("price", *p.Price)
	}
	if p.CategoryID != nil {
		add("category_id", *p.CategoryID)
	}
	if p.IsAvailable != nil {
		add("is_available", *p.IsAvailable)
	}
	if p.PreparationTime != nil {
		add("preparation_time", *p.PreparationTime)
	}
	if p.Ingredients != nil {
		add("ingredients", *p.Ingredients)
	}
	if p.Allergens != nil {
		add("allergens", *p.Allergens)
	}
	if p.Calories != nil {
		add("calories", *p.Calories)
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	res, err := r.DB.ExecContext(ctx,
		"UPDATE menu_items SET "+strings.Join(sets, ", ")+" WHERE item_id = ?", args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an item unconditionally.  Returns ErrNotFound when no row
// matched the id.
func (r *ItemRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM menu_items WHERE item_id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats computes the aggregate counters over the catalog.
func (r *ItemRepo) Stats(ctx context.Context) (model.Stats, error) {
	var s model.Stats
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM menu_items").Scan(&s.TotalItems); err != nil {
		return s, err
	}
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM menu_items WHERE is_available = 1").Scan(&s.AvailableItems); err != nil {
		return s, err
	}
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM categories WHERE is_active = 1").Scan(&s.TotalActiveCategories); err != nil {
		return s, err
	}
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COALESCE(ROUND(AVG(price), 2), 0) FROM menu_items WHERE is_available = 1").Scan(&s.AveragePrice); err != nil {
		return s, err
	}
	s.UnavailableItems = s.TotalItems - s.AvailableItems
	return s, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface{ Scan(dest ...any) error }

func scanItem(sc scanner, it *model.MenuItem) error {
	return sc.Scan(&it.ID, &it.Name, &it.Description, &it.Price, &it.CategoryID,
		&it.IsAvailable, &it.PreparationTime, &it.Ingredients, &it.Allergens,
		&it.Calories, &it.CreatedAt, &it.UpdatedAt)
}

func scanItemWithCategory(sc scanner) (model.ItemWithCategory, error) {
	var it model.ItemWithCategory
	var catName sql.NullString
	err := sc.Scan(&it.ID, &it.Name, &it.Description, &it.Price, &it.CategoryID,
		&it.IsAvailable, &it.PreparationTime, &it.Ingredients, &it.Allergens,
		&it.Calories, &it.CreatedAt, &it.UpdatedAt, &catName)
	if err != nil {
		return it, err
	}
	it.CategoryName = catName.String
	return it, nil
}

func collectItemsWithCategory(rows *sql.Rows) ([]model.ItemWithCategory, error) {
	out := []model.ItemWithCategory{}
	for rows.Next() {
		it, err := scanItemWithCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
