package model

import "time"

// Show represents one artist performing at one venue at a given time.
// Both references are required and must resolve to existing rows; the
// database enforces this through foreign keys.
//
// Fields:
//  ID        – primary key identifier.
//  StartTime – when the show begins (stored in UTC).
//  ArtistID  – artist performing.
//  VenueID   – venue hosting the show.
type Show struct {
    ID        int64     // shows.id
    StartTime time.Time // shows.start_time
    ArtistID  int64     // shows.artist_id
    VenueID   int64     // shows.venue_id
}
