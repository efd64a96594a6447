package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-menu/internal/queue"
	"github.com/iliyamo/restaurant-menu/internal/repository"
)

type createCategoryReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateCategory adds a classification bucket.  Admin only.  The name is
// required; uniqueness is enforced by the store and surfaces as 409.
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req createCategoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Categories.Create(ctx, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "category already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create category failed"})
	}

	cat, err := h.Categories.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load category failed"})
	}
	h.emit(c, queue.CategoryCreated, cat.ID, cat.Name)
	return c.JSON(http.StatusCreated, echo.Map{"category": cat})
}

// ListCategories returns all categories ordered by name.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	cats, err := h.Categories.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": cats})
}

// GetCategory returns one category by id.
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	cat, err := h.Categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"category": cat})
}

// ListCategoryItems returns the available items of one category ordered by
// name.  The id is used as given: no existence check is performed, so a
// dangling category id yields an empty list rather than 404.
func (h *CatalogHandler) ListCategoryItems(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	items, err := h.Items.ListByCategory(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
