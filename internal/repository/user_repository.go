package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/restaurant-menu/internal/model"
	"github.com/iliyamo/restaurant-menu/internal/utils"
)

const userColumns = "user_id, username, role, COALESCE(full_name,''), COALESCE(email,''), created_at"

// UserRepo encapsulates all database queries related to users.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create hashes the password, inserts the user and returns its id.  The
// role is normalized to staff unless an exact known role is supplied; the
// username is stored as given (lookups are case-sensitive).  A username
// collision is reported as ErrUsernameExists via the store-level unique
// constraint, not an application-level pre-check.
func (r *UserRepo) Create(ctx context.Context, username, password, role, fullName, email string, cost int) (int64, error) {
	if role != model.RoleAdmin && role != model.RoleStaff {
		role = model.RoleStaff
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, password_hash, role, full_name, email) VALUES (?,?,?,?,?)",
		username, hash, role, fullName, email)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, ErrUsernameExists
		}
		return 0, err
	}
	return res.LastInsertId()
}

// GetByUsername fetches a user by exact username match, including the
// password hash for credential comparison.  Returns ErrNotFound when no
// such user exists.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+", password_hash FROM users WHERE username = ? LIMIT 1",
		username).Scan(&u.ID, &u.Username, &u.Role, &u.FullName, &u.Email, &u.CreatedAt, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// GetByID fetches a user by id.  Returns ErrNotFound when absent.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE user_id = ? LIMIT 1",
		id).Scan(&u.ID, &u.Username, &u.Role, &u.FullName, &u.Email, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// List returns all users, newest first.  The id is used as a tiebreak so
// the order stays deterministic for rows created within the same second.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY created_at DESC, user_id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Role, &u.FullName, &u.Email, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
