// Package queue publishes catalog change events to a message broker.
package queue

// Routing keys for catalog change events.  The routing key doubles as the
// queue name on the default exchange.
const (
	ItemCreated     = "catalog.item.created"
	ItemUpdated     = "catalog.item.updated"
	ItemDeleted     = "catalog.item.deleted"
	CategoryCreated = "catalog.category.created"
)

// CatalogEvent describes one change to the catalog.  It carries enough for
// downstream consumers (audit log, cache invalidation, menu displays) to
// react without querying the database.
type CatalogEvent struct {
	Type       string `json:"type"`
	EntityID   int64  `json:"entity_id"`
	EntityName string `json:"entity_name,omitempty"`
	ActorID    int64  `json:"actor_id,omitempty"`
	OccurredAt string `json:"occurred_at"`
}
