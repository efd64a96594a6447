package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-menu/internal/queue"
	"github.com/iliyamo/restaurant-menu/internal/repository"
)

// CatalogHandler bundles dependencies for menu item and category endpoints.
// Events is optional; when nil no catalog change events are emitted.
type CatalogHandler struct {
	Items      *repository.ItemRepo
	Categories *repository.CategoryRepo
	Events     *queue.Publisher
}

func NewCatalogHandler(items *repository.ItemRepo, cats *repository.CategoryRepo, events *queue.Publisher) *CatalogHandler {
	return &CatalogHandler{Items: items, Categories: cats, Events: events}
}

// reqCtx bounds the duration of database calls made by one request.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

// pathID parses the :id route parameter as a positive integer.
func pathID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// emit publishes a catalog change event on a best-effort basis.  The actor
// id comes from the validated token; publish failures are logged inside the
// publisher and deliberately ignored here.
func (h *CatalogHandler) emit(c echo.Context, eventType string, entityID int64, entityName string) {
	if h.Events == nil || !h.Events.Enabled() {
		return
	}
	actor, _ := c.Get("user_id").(int64)
	_ = h.Events.Publish(context.Background(), queue.CatalogEvent{
		Type:       eventType,
		EntityID:   entityID,
		EntityName: entityName,
		ActorID:    actor,
	})
}

// Stats reports the aggregate catalog counters.
func (h *CatalogHandler) Stats(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	s, err := h.Items.Stats(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, s)
}
