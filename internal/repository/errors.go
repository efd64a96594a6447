// Package repository contains data access logic separated from HTTP handlers.
// This file defines sentinel errors shared by the repositories.  Expected
// failure conditions (not found, duplicate key) are reported as these values
// so handlers can distinguish them from unexpected storage errors, which
// propagate as-is.
package repository

import "errors"

// ErrNotFound is returned when an operation targets a nonexistent id.
// Handlers translate it into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrUsernameExists is returned when registration collides with an existing
// username.  Handlers translate it into an HTTP 409 response.
var ErrUsernameExists = errors.New("username already exists")

// ErrCategoryExists is returned when a category name collides with an
// existing one.  Handlers translate it into an HTTP 409 response.
var ErrCategoryExists = errors.New("category already exists")
