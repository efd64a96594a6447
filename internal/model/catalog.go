package model

import "time"

// Category is a classification bucket for menu items.  Categories are
// created and read but never updated or deleted; menu items reference them
// weakly by id.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// MenuItem is a sellable catalog entry.  CategoryID is a weak reference:
// nothing guarantees the referenced category exists, so reads resolve the
// category name through a LEFT JOIN and report it as empty when absent.
//
// CreatedAt is set once; UpdatedAt is refreshed on every successful update.
type MenuItem struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	CategoryID      int64     `json:"category_id"`
	IsAvailable     bool      `json:"is_available"`
	PreparationTime int       `json:"preparation_time"`
	Ingredients     string    `json:"ingredients"`
	Allergens       string    `json:"allergens"`
	Calories        int       `json:"calories"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ItemWithCategory pairs a menu item with its resolved category name.
// CategoryName is empty when the item's category reference does not resolve.
type ItemWithCategory struct {
	MenuItem
	CategoryName string `json:"category_name"`
}

// Stats aggregates catalog-wide counters.  AveragePrice is computed over
// available items only, rounded to two decimal places, and zero when the
// catalog holds no available item.
type Stats struct {
	TotalItems            int     `json:"total_items"`
	AvailableItems        int     `json:"available_items"`
	UnavailableItems      int     `json:"unavailable_items"`
	TotalActiveCategories int     `json:"total_active_categories"`
	AveragePrice          float64 `json:"average_price"`
}
