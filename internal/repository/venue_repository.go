package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/booking-directory/internal/model"
)

// VenueListing is a venue row as shown in the venue directory, with the
// number of shows still to come.
type VenueListing struct {
	ID               int64
	Name             string
	City             string
	State            string
	NumUpcomingShows int
}

// VenueRepo encapsulates all queries related to venues.
type VenueRepo struct {
	db DBTX
}

// NewVenueRepo constructs a VenueRepo bound to a pool, connection or
// transaction.
func NewVenueRepo(db DBTX) *VenueRepo {
	return &VenueRepo{db: db}
}

const venueColumns = `id, name, city, state, address, phone, genres, image_link,
	website, facebook_link, seeking_talent, seeking_description`

func scanVenue(row interface{ Scan(...any) error }, v *model.Venue) error {
	var genres string
	if err := row.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &genres,
		&v.ImageLink, &v.Website, &v.FacebookLink, &v.SeekingTalent, &v.SeekingDescription); err != nil {
		return err
	}
	v.Genres = model.SplitGenres(genres)
	return nil
}

// Create inserts a new venue.  On success the venue's ID field holds the
// auto-generated value.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	const q = `INSERT INTO venues (name, city, state, address, phone, genres, image_link,
	           website, facebook_link, seeking_talent, seeking_description)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address, v.Phone,
		v.Genres.Join(), v.ImageLink, v.Website, v.FacebookLink, v.SeekingTalent, v.SeekingDescription)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = id
	return nil
}

// GetByID fetches a venue by its ID.  It returns ErrVenueNotFound if no
// row is found.
func (r *VenueRepo) GetByID(ctx context.Context, id int64) (*model.Venue, error) {
	q := "SELECT " + venueColumns + " FROM venues WHERE id = ?"
	var v model.Venue
	if err := scanVenue(r.db.QueryRowContext(ctx, q, id), &v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &v, nil
}

// Update overwrites every mutable column of the venue identified by v.ID.
// There is no partial update and no version check: the last writer wins.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	const q = `UPDATE venues
	           SET name = ?, city = ?, state = ?, address = ?, phone = ?, genres = ?,
	               image_link = ?, website = ?, facebook_link = ?, seeking_talent = ?,
	               seeking_description = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address, v.Phone,
		v.Genres.Join(), v.ImageLink, v.Website, v.FacebookLink, v.SeekingTalent,
		v.SeekingDescription, v.ID)
	if err != nil {
		return err
	}
	return r.ensureExists(ctx, res, v.ID)
}

// Delete removes the venue.  Shows referencing it make the delete fail on
// the foreign key.  ErrVenueNotFound is returned when no row matches.
func (r *VenueRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrVenueNotFound
	}
	return nil
}

// ensureExists distinguishes "no such venue" from "nothing changed":
// MySQL reports zero affected rows for an UPDATE that rewrites identical
// values.
func (r *VenueRepo) ensureExists(ctx context.Context, res sql.Result, id int64) error {
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	var one int
	if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ?`, id).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVenueNotFound
		}
		return err
	}
	return nil
}

// ListAll returns every venue ordered by id, each with the number of shows
// starting after now.
func (r *VenueRepo) ListAll(ctx context.Context, now time.Time) ([]VenueListing, error) {
	const q = `SELECT v.id, v.name, v.city, v.state,
	                  (SELECT COUNT(*) FROM shows s WHERE s.venue_id = v.id AND s.start_time > ?)
	           FROM venues v
	           ORDER BY v.id`
	rows, err := r.db.QueryContext(ctx, q, now.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []VenueListing{}
	for rows.Next() {
		var l VenueListing
		if err := rows.Scan(&l.ID, &l.Name, &l.City, &l.State, &l.NumUpcomingShows); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Search returns venues whose name contains term, ignoring case.  An empty
// term matches every venue.
func (r *VenueRepo) Search(ctx context.Context, term string, now time.Time) (SearchResult, error) {
	const q = `SELECT v.id, v.name,
	                  (SELECT COUNT(*) FROM shows s WHERE s.venue_id = v.id AND s.start_time > ?)
	           FROM venues v
	           WHERE LOWER(v.name) LIKE LOWER(?) ESCAPE '!'
	           ORDER BY v.id`
	return searchNames(ctx, r.db, q, term, now)
}
