package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/iliyamo/restaurant-menu/internal/utils"
)

func testHash(plain string) (string, error) {
	// Minimum bcrypt cost keeps the test fast.
	return utils.HashPassword(plain, 4)
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := InitSchema(context.Background(), db); err != nil {
		t.Fatalf("InitSchema: %v", err)
	}
	return db
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func TestInitSchemaIdempotent(t *testing.T) {
	db := openTestDB(t)
	// A second run over an existing schema must succeed and change nothing.
	if err := InitSchema(context.Background(), db); err != nil {
		t.Fatalf("second InitSchema: %v", err)
	}
	for _, table := range []string{"users", "categories", "menu_items"} {
		if got := countRows(t, db, table); got != 0 {
			t.Errorf("table %s: %d rows after bare schema init, want 0", table, got)
		}
	}
}

func TestSeedDefaultsIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	for run := 0; run < 2; run++ {
		if err := SeedDefaults(ctx, db, testHash); err != nil {
			t.Fatalf("SeedDefaults run %d: %v", run+1, err)
		}
	}
	if got := countRows(t, db, "users"); got != 2 {
		t.Errorf("users after double seed: %d, want 2", got)
	}
	if got := countRows(t, db, "categories"); got != 5 {
		t.Errorf("categories after double seed: %d, want 5", got)
	}
}

func TestSeedDefaultsAccounts(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	if err := SeedDefaults(ctx, db, testHash); err != nil {
		t.Fatalf("SeedDefaults: %v", err)
	}

	tests := []struct {
		username string
		password string
		role     string
	}{
		{"admin", "admin123", "admin"},
		{"staff", "staff123", "staff"},
	}
	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			var hash, role string
			err := db.QueryRow(
				"SELECT password_hash, role FROM users WHERE username = ?",
				tt.username).Scan(&hash, &role)
			if err != nil {
				t.Fatalf("seed account %q missing: %v", tt.username, err)
			}
			if role != tt.role {
				t.Errorf("role = %q, want %q", role, tt.role)
			}
			if !utils.VerifyPassword(hash, tt.password) {
				t.Errorf("documented password %q does not verify", tt.password)
			}
			if utils.VerifyPassword(hash, "wrong-password") {
				t.Error("wrong password verified")
			}
		})
	}
}

func TestSeedDefaultsCategories(t *testing.T) {
	db := openTestDB(t)
	if err := SeedDefaults(context.Background(), db, testHash); err != nil {
		t.Fatalf("SeedDefaults: %v", err)
	}

	want := map[string]bool{
		"Appetizers": false, "Main Courses": false, "Desserts": false,
		"Beverages": false, "Salads": false,
	}
	rows, err := db.Query("SELECT name, is_active FROM categories")
	if err != nil {
		t.Fatalf("query categories: %v", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		var active bool
		if err := rows.Scan(&name, &active); err != nil {
			t.Fatalf("scan: %v", err)
		}
		if _, ok := want[name]; !ok {
			t.Errorf("unexpected seeded category %q", name)
			continue
		}
		if !active {
			t.Errorf("category %q seeded inactive", name)
		}
		want[name] = true
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("category %q not seeded", name)
		}
	}
}

func TestWeakCategoryReference(t *testing.T) {
	db := openTestDB(t)
	// The item→category reference is weak: inserting an item that points at
	// a category which does not exist must succeed.
	_, err := db.Exec(
		"INSERT INTO menu_items (name, price, category_id) VALUES (?,?,?)",
		"Orphan Dish", 5.00, 9999)
	if err != nil {
		t.Fatalf("insert with dangling category id: %v", err)
	}
}
