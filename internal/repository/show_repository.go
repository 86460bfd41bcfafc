// Shows are create-only.  The read side returns shows joined with the
// artist and venue they connect, split into upcoming and past relative to
// a reference instant.

package repository

import (
	"context"
	"time"

	"github.com/iliyamo/booking-directory/internal/model"
)

// ShowWithArtist is a venue's show enriched with the performing artist.
type ShowWithArtist struct {
	ShowID          int64
	VenueID         int64
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ShowWithVenue is an artist's show enriched with the hosting venue.
type ShowWithVenue struct {
	ShowID         int64
	ArtistID       int64
	VenueID        int64
	VenueName      string
	VenueImageLink string
	StartTime      time.Time
}

// ShowListing is a show enriched with both sides, as listed in the show
// directory.
type ShowListing struct {
	ShowID          int64
	StartTime       time.Time
	VenueID         int64
	VenueName       string
	VenueImageLink  string
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
}

// VenuePartition splits a venue's shows around a reference instant.
type VenuePartition struct {
	Upcoming []ShowWithArtist
	Past     []ShowWithArtist
}

// ArtistPartition splits an artist's shows around a reference instant.
type ArtistPartition struct {
	Upcoming []ShowWithVenue
	Past     []ShowWithVenue
}

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db DBTX
}

// NewShowRepo constructs a ShowRepo bound to a pool, connection or
// transaction.
func NewShowRepo(db DBTX) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a new show and assigns the generated ID.  The artist and
// venue references are checked by the database only; a dangling reference
// surfaces as the insert (or commit) error.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	const q = `INSERT INTO shows (start_time, artist_id, venue_id) VALUES (?, ?, ?)`
	s.StartTime = s.StartTime.UTC()
	res, err := r.db.ExecContext(ctx, q, s.StartTime, s.ArtistID, s.VenueID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

// Time filters for the partition queries.  Both are strict, so a show
// starting exactly at the reference instant is neither upcoming nor past.
const (
	afterNow  = "s.start_time > ?"
	beforeNow = "s.start_time < ?"
)

// ForVenue returns the venue's upcoming (start_time > now) and past
// (start_time < now) shows, each joined with its artist.  A venue without
// shows yields two empty lists.
func (r *ShowRepo) ForVenue(ctx context.Context, venueID int64, now time.Time) (VenuePartition, error) {
	upcoming, err := r.venueShows(ctx, venueID, afterNow, now)
	if err != nil {
		return VenuePartition{}, err
	}
	past, err := r.venueShows(ctx, venueID, beforeNow, now)
	if err != nil {
		return VenuePartition{}, err
	}
	return VenuePartition{Upcoming: upcoming, Past: past}, nil
}

func (r *ShowRepo) venueShows(ctx context.Context, venueID int64, filter string, now time.Time) ([]ShowWithArtist, error) {
	q := `SELECT s.id, s.venue_id, s.artist_id, a.name, a.image_link, s.start_time
	      FROM shows s
	      JOIN artists a ON a.id = s.artist_id
	      WHERE s.venue_id = ? AND ` + filter + `
	      ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, venueID, now.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ShowWithArtist{}
	for rows.Next() {
		var s ShowWithArtist
		if err := rows.Scan(&s.ShowID, &s.VenueID, &s.ArtistID, &s.ArtistName, &s.ArtistImageLink, &s.StartTime); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ForArtist returns the artist's upcoming and past shows, each joined
// with its venue.
func (r *ShowRepo) ForArtist(ctx context.Context, artistID int64, now time.Time) (ArtistPartition, error) {
	upcoming, err := r.artistShows(ctx, artistID, afterNow, now)
	if err != nil {
		return ArtistPartition{}, err
	}
	past, err := r.artistShows(ctx, artistID, beforeNow, now)
	if err != nil {
		return ArtistPartition{}, err
	}
	return ArtistPartition{Upcoming: upcoming, Past: past}, nil
}

func (r *ShowRepo) artistShows(ctx context.Context, artistID int64, filter string, now time.Time) ([]ShowWithVenue, error) {
	q := `SELECT s.id, s.artist_id, s.venue_id, v.name, v.image_link, s.start_time
	      FROM shows s
	      JOIN venues v ON v.id = s.venue_id
	      WHERE s.artist_id = ? AND ` + filter + `
	      ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, artistID, now.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ShowWithVenue{}
	for rows.Next() {
		var s ShowWithVenue
		if err := rows.Scan(&s.ShowID, &s.ArtistID, &s.VenueID, &s.VenueName, &s.VenueImageLink, &s.StartTime); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAll returns every show, latest first, joined with its venue and
// artist.
func (r *ShowRepo) ListAll(ctx context.Context) ([]ShowListing, error) {
	const q = `SELECT s.id, s.start_time, v.id, v.name, v.image_link, a.id, a.name, a.image_link
	           FROM shows s
	           JOIN venues v  ON v.id = s.venue_id
	           JOIN artists a ON a.id = s.artist_id
	           ORDER BY s.start_time DESC, s.id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ShowListing{}
	for rows.Next() {
		var s ShowListing
		if err := rows.Scan(&s.ShowID, &s.StartTime, &s.VenueID, &s.VenueName, &s.VenueImageLink,
			&s.ArtistID, &s.ArtistName, &s.ArtistImageLink); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
