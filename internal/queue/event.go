// Package queue defines message payloads exchanged over the message broker
// and the publisher/consumer pair that moves them.
package queue

import "time"

// EventsQueue is the durable queue directory events are routed to.
const EventsQueue = "directory.events"

// Event types.
const (
    VenueListed   = "venue.listed"
    VenueUpdated  = "venue.updated"
    VenueDeleted  = "venue.deleted"
    ArtistListed  = "artist.listed"
    ArtistUpdated = "artist.updated"
    ShowListed    = "show.listed"
)

// DirectoryEvent is published after a directory change has been committed.
// It carries enough for downstream consumers to log or notify without
// querying the primary database.
type DirectoryEvent struct {
    Type       string    `json:"type"`
    EntityID   int64     `json:"entity_id"`
    Name       string    `json:"name,omitempty"`
    OccurredAt time.Time `json:"occurred_at"`
}
