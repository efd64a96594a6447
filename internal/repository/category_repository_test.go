package repository

import (
	"context"
	"errors"
	"testing"
)

func TestCategoryCreateAndGet(t *testing.T) {
	r := NewCategoryRepo(openTestDB(t))
	ctx := context.Background()

	id, err := r.Create(ctx, "Desserts", "Sweet treats")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	c, err := r.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if c.Name != "Desserts" || c.Description != "Sweet treats" {
		t.Errorf("unexpected category: %+v", c)
	}
	if !c.IsActive {
		t.Error("new category should default to active")
	}
	if c.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}
}

func TestCategoryDuplicateName(t *testing.T) {
	r := NewCategoryRepo(openTestDB(t))
	ctx := context.Background()

	if _, err := r.Create(ctx, "Beverages", ""); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if _, err := r.Create(ctx, "Beverages", "other description"); !errors.Is(err, ErrCategoryExists) {
		t.Fatalf("second Create err = %v, want ErrCategoryExists", err)
	}
	cats, err := r.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(cats) != 1 {
		t.Errorf("got %d categories, want 1", len(cats))
	}
}

func TestCategoryListOrderedByName(t *testing.T) {
	r := NewCategoryRepo(openTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"Salads", "Appetizers", "Main Courses"} {
		if _, err := r.Create(ctx, name, ""); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}
	cats, err := r.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"Appetizers", "Main Courses", "Salads"}
	if len(cats) != len(want) {
		t.Fatalf("got %d categories, want %d", len(cats), len(want))
	}
	for i, w := range want {
		if cats[i].Name != w {
			t.Errorf("cats[%d] = %q, want %q", i, cats[i].Name, w)
		}
	}
}

func TestCategoryGetByIDNotFound(t *testing.T) {
	r := NewCategoryRepo(openTestDB(t))
	if _, err := r.GetByID(context.Background(), 7); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID err = %v, want ErrNotFound", err)
	}
}
