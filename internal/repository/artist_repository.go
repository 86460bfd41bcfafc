package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/booking-directory/internal/model"
)

// ArtistListing is an artist row as shown in the artist directory.
type ArtistListing struct {
	ID               int64
	Name             string
	NumUpcomingShows int
}

// ArtistRepo encapsulates all queries related to artists.  Artists have no
// delete path.
type ArtistRepo struct {
	db DBTX
}

// NewArtistRepo constructs an ArtistRepo bound to a pool, connection or
// transaction.
func NewArtistRepo(db DBTX) *ArtistRepo {
	return &ArtistRepo{db: db}
}

const artistColumns = `id, name, city, state, phone, genres, image_link, facebook_link,
	seeking_venue, seeking_description, website`

func scanArtist(row interface{ Scan(...any) error }, a *model.Artist) error {
	var genres string
	if err := row.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &genres, &a.ImageLink,
		&a.FacebookLink, &a.SeekingVenue, &a.SeekingDescription, &a.Website); err != nil {
		return err
	}
	a.Genres = model.SplitGenres(genres)
	return nil
}

// Create inserts a new artist and populates its ID.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	const q = `INSERT INTO artists (name, city, state, phone, genres, image_link, facebook_link,
	           seeking_venue, seeking_description, website)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, a.Name, a.City, a.State, a.Phone, a.Genres.Join(),
		a.ImageLink, a.FacebookLink, a.SeekingVenue, a.SeekingDescription, a.Website)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = id
	return nil
}

// GetByID fetches an artist by its ID.  It returns ErrArtistNotFound if no
// row is found.
func (r *ArtistRepo) GetByID(ctx context.Context, id int64) (*model.Artist, error) {
	q := "SELECT " + artistColumns + " FROM artists WHERE id = ?"
	var a model.Artist
	if err := scanArtist(r.db.QueryRowContext(ctx, q, id), &a); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Update overwrites every mutable column of the artist identified by a.ID.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	const q = `UPDATE artists
	           SET name = ?, city = ?, state = ?, phone = ?, genres = ?, image_link = ?,
	               facebook_link = ?, seeking_venue = ?, seeking_description = ?, website = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, a.Name, a.City, a.State, a.Phone, a.Genres.Join(),
		a.ImageLink, a.FacebookLink, a.SeekingVenue, a.SeekingDescription, a.Website, a.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	// zero rows: either missing or unchanged (MySQL)
	if _, err := r.GetByID(ctx, a.ID); err != nil {
		return err
	}
	return nil
}

// ListAll returns every artist ordered by id.
func (r *ArtistRepo) ListAll(ctx context.Context, now time.Time) ([]ArtistListing, error) {
	const q = `SELECT a.id, a.name,
	                  (SELECT COUNT(*) FROM shows s WHERE s.artist_id = a.id AND s.start_time > ?)
	           FROM artists a
	           ORDER BY a.id`
	rows, err := r.db.QueryContext(ctx, q, now.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ArtistListing{}
	for rows.Next() {
		var l ArtistListing
		if err := rows.Scan(&l.ID, &l.Name, &l.NumUpcomingShows); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Search returns artists whose name contains term, ignoring case.
func (r *ArtistRepo) Search(ctx context.Context, term string, now time.Time) (SearchResult, error) {
	const q = `SELECT a.id, a.name,
	                  (SELECT COUNT(*) FROM shows s WHERE s.artist_id = a.id AND s.start_time > ?)
	           FROM artists a
	           WHERE LOWER(a.name) LIKE LOWER(?) ESCAPE '!'
	           ORDER BY a.id`
	return searchNames(ctx, r.db, q, term, now)
}
