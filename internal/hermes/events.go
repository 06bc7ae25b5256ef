package hermes

import "time"

// CollectionSavedEvent tells subscribers that a collection was replaced and
// any cached reads of it are stale.
type CollectionSavedEvent struct {
	EventID    string    `json:"event_id"`
	Collection string    `json:"collection"`
	Count      int       `json:"count"`
	SavedAt    time.Time `json:"saved_at"`
}
