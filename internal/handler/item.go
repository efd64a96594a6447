package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-menu/internal/queue"
	"github.com/iliyamo/restaurant-menu/internal/repository"
)

type createItemReq struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	CategoryID      int64   `json:"category_id"`
	IsAvailable     *bool   `json:"is_available"` // defaults to true
	PreparationTime int     `json:"preparation_time"`
	Ingredients     string  `json:"ingredients"`
	Allergens       string  `json:"allergens"`
	Calories        int     `json:"calories"`
}

type updateItemReq struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	CategoryID      *int64   `json:"category_id"`
	IsAvailable     *bool    `json:"is_available"`
	PreparationTime *int     `json:"preparation_time"`
	Ingredients     *string  `json:"ingredients"`
	Allergens       *string  `json:"allergens"`
	Calories        *int     `json:"calories"`
}

// CreateItem adds a menu item.  Admin only.  Name and a positive price are
// required; availability defaults to true and preparation time to 15
// minutes.  The category reference is weak, so no existence check is made
// against the categories relation.
func (h *CatalogHandler) CreateItem(c echo.Context) error {
	var req createItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	if req.Price <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must be positive"})
	}
	if req.CategoryID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "category_id required"})
	}
	if req.Calories < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "calories must not be negative"})
	}
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Items.Create(ctx, repository.CreateItemParams{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		CategoryID:      req.CategoryID,
		IsAvailable:     available,
		PreparationTime: req.PreparationTime,
		Ingredients:     req.Ingredients,
		Allergens:       req.Allergens,
		Calories:        req.Calories,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create item failed"})
	}

	it, err := h.Items.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load item failed"})
	}
	h.emit(c, queue.ItemCreated, it.ID, it.Name)
	return c.JSON(http.StatusCreated, echo.Map{"item": it})
}

// ListItems returns every item with its resolved category name, ordered by
// category name then item name.
func (h *CatalogHandler) ListItems(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	items, err := h.Items.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetItem returns one item by id with its resolved category name.
func (h *CatalogHandler) GetItem(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	it, err := h.Items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": it})
}

// SearchItems matches ?q= as a case-insensitive substring of the item name
// or description over available items.  A blank query is rejected here;
// the repository itself accepts any term.
func (h *CatalogHandler) SearchItems(c echo.Context) error {
	term := c.QueryParam("q")
	if strings.TrimSpace(term) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "q required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	items, err := h.Items.Search(ctx, term)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// UpdateItem applies a partial update.  Admin only.  Only supplied fields
// change; supplied values are validated the same way as on create.
func (h *CatalogHandler) UpdateItem(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req updateItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "name must not be empty"})
		}
		req.Name = &trimmed
	}
	if req.Price != nil && *req.Price <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must be positive"})
	}
	if req.CategoryID != nil && *req.CategoryID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "category_id must be positive"})
	}
	if req.PreparationTime != nil && *req.PreparationTime <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "preparation_time must be positive"})
	}
	if req.Calories != nil && *req.Calories < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "calories must not be negative"})
	}

	patch := repository.ItemPatch{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		CategoryID:      req.CategoryID,
		IsAvailable:     req.IsAvailable,
		PreparationTime: req.PreparationTime,
		Ingredients:     req.Ingredients,
		Allergens:       req.Allergens,
		Calories:        req.Calories,
	}
	if patch.IsEmpty() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no fields to update"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Items.Update(ctx, id, patch); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update item failed"})
	}

	it, err := h.Items.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load item failed"})
	}
	h.emit(c, queue.ItemUpdated, it.ID, it.Name)
	return c.JSON(http.StatusOK, echo.Map{"item": it})
}

// DeleteItem removes an item unconditionally.  Admin only.
func (h *CatalogHandler) DeleteItem(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Items.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete item failed"})
	}
	h.emit(c, queue.ItemDeleted, id, "")
	return c.NoContent(http.StatusNoContent)
}
