package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Open creates (if needed) and opens the sqlite database file at path and
// verifies the connection.  The parent directory is created on first run.
//
// Foreign keys are deliberately left unenforced: menu_items.category_id is a
// weak reference and inserting an item with a dangling category id must
// succeed.  _busy_timeout keeps concurrent statements from failing
// immediately with SQLITE_BUSY.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	// sqlite serializes writers; a small pool is plenty.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// InitSchema ensures the three relations exist.  It is idempotent and safe
// to call on every startup; it only fails on unrecoverable storage errors.
func InitSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id       INTEGER PRIMARY KEY AUTOINCREMENT,
			username      TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			role          TEXT DEFAULT 'staff',
			full_name     TEXT,
			email         TEXT,
			created_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			category_id INTEGER PRIMARY KEY AUTOINCREMENT,
			name        TEXT UNIQUE NOT NULL,
			description TEXT,
			is_active   BOOLEAN DEFAULT 1,
			created_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			item_id          INTEGER PRIMARY KEY AUTOINCREMENT,
			name             TEXT NOT NULL,
			description      TEXT,
			price            DECIMAL(10,2) NOT NULL,
			category_id      INTEGER,
			is_available     BOOLEAN DEFAULT 1,
			preparation_time INTEGER DEFAULT 15,
			ingredients      TEXT,
			allergens        TEXT,
			calories         INTEGER,
			created_at       TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at       TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (category_id) REFERENCES categories (category_id)
		)`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// seedUser describes one default account inserted on first run.
type seedUser struct {
	Username string
	Password string
	Role     string
	FullName string
	Email    string
}

// seedUsers are the well-known default accounts.
var seedUsers = []seedUser{
	{"admin", "admin123", "admin", "System Administrator", "admin@restaurant.com"},
	{"staff", "staff123", "staff", "Restaurant Staff", "staff@restaurant.com"},
}

// seedCategories are the fixed sample categories inserted on first run.
var seedCategories = [][2]string{
	{"Appetizers", "Start your meal with our delicious appetizers"},
	{"Main Courses", "Our signature main dishes"},
	{"Desserts", "Sweet treats to end your meal"},
	{"Beverages", "Refreshing drinks and beverages"},
	{"Salads", "Fresh and healthy salad options"},
}

// SeedDefaults inserts the default accounts and sample categories, but only
// when the corresponding relation is empty, which makes re-running it across
// restarts a no-op.  The hash function turns a plaintext password into its
// stored credential; it is injected so the store does not depend on a
// particular hashing scheme.
func SeedDefaults(ctx context.Context, db *sql.DB, hash func(string) (string, error)) error {
	var userCount int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&userCount); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if userCount == 0 {
		for _, u := range seedUsers {
			h, err := hash(u.Password)
			if err != nil {
				return fmt.Errorf("seed users: %w", err)
			}
			if _, err := db.ExecContext(ctx,
				"INSERT INTO users (username, password_hash, role, full_name, email) VALUES (?,?,?,?,?)",
				u.Username, h, u.Role, u.FullName, u.Email); err != nil {
				return fmt.Errorf("seed users: %w", err)
			}
		}
	}

	var catCount int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories").Scan(&catCount); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if catCount == 0 {
		for _, c := range seedCategories {
			if _, err := db.ExecContext(ctx,
				"INSERT INTO categories (name, description) VALUES (?,?)",
				c[0], c[1]); err != nil {
				return fmt.Errorf("seed categories: %w", err)
			}
		}
	}
	return nil
}
