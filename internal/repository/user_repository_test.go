package repository

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/iliyamo/restaurant-menu/internal/database"
	"github.com/iliyamo/restaurant-menu/internal/utils"
)

// Minimum bcrypt cost keeps repository tests fast.
const testCost = 4

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.InitSchema(context.Background(), db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func TestUserCreateAndAuthenticate(t *testing.T) {
	r := NewUserRepo(openTestDB(t))
	ctx := context.Background()

	id, err := r.Create(ctx, "alice", "s3cret", "admin", "Alice A.", "alice@restaurant.com", testCost)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id <= 0 {
		t.Fatalf("Create returned id %d", id)
	}

	u, err := r.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if u.Role != "admin" || u.FullName != "Alice A." || u.Email != "alice@restaurant.com" {
		t.Errorf("unexpected user: %+v", u)
	}
	if !utils.VerifyPassword(u.PasswordHash, "s3cret") {
		t.Error("correct password does not verify")
	}
	if utils.VerifyPassword(u.PasswordHash, "wrong") {
		t.Error("wrong password verifies")
	}

	// Usernames are case-sensitive: a different casing is a different user.
	if _, err := r.GetByUsername(ctx, "Alice"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByUsername(Alice) err = %v, want ErrNotFound", err)
	}
}

func TestUserDuplicateUsername(t *testing.T) {
	r := NewUserRepo(openTestDB(t))
	ctx := context.Background()

	if _, err := r.Create(ctx, "bob", "pw1", "staff", "", "", testCost); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := r.Create(ctx, "bob", "pw2", "staff", "", "", testCost)
	if !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("second Create err = %v, want ErrUsernameExists", err)
	}

	users, err := r.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	n := 0
	for _, u := range users {
		if u.Username == "bob" {
			n++
		}
	}
	if n != 1 {
		t.Errorf("found %d users named bob, want exactly 1", n)
	}
}

func TestUserRoleNormalization(t *testing.T) {
	r := NewUserRepo(openTestDB(t))
	ctx := context.Background()

	tests := []struct {
		name string
		role string
		want string
	}{
		{"admin kept", "admin", "admin"},
		{"staff kept", "staff", "staff"},
		{"unknown falls back", "superuser", "staff"},
		{"empty falls back", "", "staff"},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := r.Create(ctx, "user"+string(rune('a'+i)), "pw", tt.role, "", "", testCost)
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			u, err := r.GetByID(ctx, id)
			if err != nil {
				t.Fatalf("GetByID: %v", err)
			}
			if u.Role != tt.want {
				t.Errorf("role = %q, want %q", u.Role, tt.want)
			}
		})
	}
}

func TestUserListNewestFirst(t *testing.T) {
	r := NewUserRepo(openTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		if _, err := r.Create(ctx, name, "pw", "staff", "", "", testCost); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}
	users, err := r.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("List returned %d users, want 3", len(users))
	}
	for _, want := range []string{"third", "second", "first"} {
		got := users[0].Username
		if got != want {
			t.Errorf("order: got %q, want %q", got, want)
		}
		users = users[1:]
	}
}

func TestUserGetByIDNotFound(t *testing.T) {
	r := NewUserRepo(openTestDB(t))
	if _, err := r.GetByID(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID err = %v, want ErrNotFound", err)
	}
}
