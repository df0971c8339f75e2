package event

import "time"

const (
	MenuItemsTopic       = "menu.items"
	EventMenuItemCreated = "menu.item.created"
	EventMenuItemUpdated = "menu.item.updated"
	EventMenuItemDeleted = "menu.item.deleted"

	ThemeTopic        = "settings.theme"
	EventThemeUpdated = "settings.theme.updated"
)

// MenuItemEvent is published to NATS whenever an admin mutation succeeds.
// Display refreshers consume it to re-fetch and regroup the board.
type MenuItemEvent struct {
	EventType  string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
	MenuItemID string    `json:"menu_item_id"`

	// Denormalized data for consumers that only log or badge changes
	Name     string `json:"name,omitempty"`
	Category string `json:"category,omitempty"`
}

// ThemeEvent notifies consumers that the stored theme settings changed.
type ThemeEvent struct {
	EventType    string    `json:"event_type"`
	OccurredAt   time.Time `json:"occurred_at"`
	RestaurantID string    `json:"restaurant_id"`
}
