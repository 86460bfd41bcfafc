package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/booking-directory/internal/database/dbtest"
	"github.com/iliyamo/booking-directory/internal/model"
)

var ctx = context.Background()

// newTestSession opens an in-memory store and one session on it.
func newTestSession(t *testing.T) *Session {
	t.Helper()
	store := NewStore(dbtest.Open(t))
	sess, err := store.Session(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { sess.Close() })
	return sess
}

func createVenue(t *testing.T, sess *Session, name, city, state string) *model.Venue {
	t.Helper()
	v := &model.Venue{Name: name, City: city, State: state, Genres: model.Genres{"Jazz"}, ImageLink: "https://img/" + name}
	require.NoError(t, sess.Venues.Create(ctx, v))
	return v
}

func createArtist(t *testing.T, sess *Session, name string) *model.Artist {
	t.Helper()
	a := &model.Artist{Name: name, Genres: model.Genres{"Blues"}, ImageLink: "https://img/" + name}
	require.NoError(t, sess.Artists.Create(ctx, a))
	return a
}

func createShow(t *testing.T, sess *Session, artistID, venueID int64, at time.Time) *model.Show {
	t.Helper()
	s := &model.Show{ArtistID: artistID, VenueID: venueID, StartTime: at}
	require.NoError(t, sess.Shows.Create(ctx, s))
	return s
}

// =========================================================================
// VENUES
// =========================================================================

func TestVenueCreateAndGet(t *testing.T) {
	sess := newTestSession(t)
	v := &model.Venue{
		Name:               "The Musical Hop",
		City:               "San Francisco",
		State:              "CA",
		Address:            "1015 Folsom Street",
		Phone:              "123-123-1234",
		Genres:             model.Genres{"Jazz", "Reggae", "Swing"},
		ImageLink:          "https://images/hop.png",
		Website:            "https://www.themusicalhop.com",
		FacebookLink:       "https://www.facebook.com/TheMusicalHop",
		SeekingTalent:      true,
		SeekingDescription: "We are on the lookout for a local artist.",
	}
	require.NoError(t, sess.Venues.Create(ctx, v))
	require.NotZero(t, v.ID)

	got, err := sess.Venues.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestVenueGetByID_NotFound(t *testing.T) {
	sess := newTestSession(t)
	_, err := sess.Venues.GetByID(ctx, 404)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestVenueUpdate_OverwritesEveryField(t *testing.T) {
	sess := newTestSession(t)
	v := createVenue(t, sess, "Old Name", "Austin", "TX")

	updated := &model.Venue{ID: v.ID, Name: "New Name", City: "Dallas", State: "TX", Genres: model.Genres{}}
	require.NoError(t, sess.Venues.Update(ctx, updated))

	got, err := sess.Venues.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestVenueUpdate_Missing(t *testing.T) {
	sess := newTestSession(t)
	err := sess.Venues.Update(ctx, &model.Venue{ID: 77, Name: "ghost"})
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestVenueDelete(t *testing.T) {
	sess := newTestSession(t)
	v := createVenue(t, sess, "Doomed", "Austin", "TX")

	require.NoError(t, sess.Venues.Delete(ctx, v.ID))
	_, err := sess.Venues.GetByID(ctx, v.ID)
	assert.ErrorIs(t, err, ErrVenueNotFound)

	assert.ErrorIs(t, sess.Venues.Delete(ctx, v.ID), ErrVenueNotFound)
}

func TestVenueDelete_WithShowsViolatesForeignKey(t *testing.T) {
	sess := newTestSession(t)
	v := createVenue(t, sess, "Busy", "Austin", "TX")
	a := createArtist(t, sess, "Band")
	createShow(t, sess, a.ID, v.ID, time.Now().Add(24*time.Hour))

	err := sess.Venues.Delete(ctx, v.ID)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrVenueNotFound))
}

func TestVenueListAll_CountsOnlyUpcomingShows(t *testing.T) {
	sess := newTestSession(t)
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	v1 := createVenue(t, sess, "First", "Austin", "TX")
	v2 := createVenue(t, sess, "Second", "Dallas", "TX")
	a := createArtist(t, sess, "Band")
	createShow(t, sess, a.ID, v1.ID, now.Add(48*time.Hour))
	createShow(t, sess, a.ID, v1.ID, now.Add(72*time.Hour))
	createShow(t, sess, a.ID, v1.ID, now.Add(-48*time.Hour))

	got, err := sess.Venues.ListAll(ctx, now)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, VenueListing{ID: v1.ID, Name: "First", City: "Austin", State: "TX", NumUpcomingShows: 2}, got[0])
	assert.Equal(t, VenueListing{ID: v2.ID, Name: "Second", City: "Dallas", State: "TX", NumUpcomingShows: 0}, got[1])
}

// =========================================================================
// SEARCH
// =========================================================================

func TestVenueSearch(t *testing.T) {
	sess := newTestSession(t)
	now := time.Now()
	createVenue(t, sess, "The Musical Hop", "San Francisco", "CA")
	createVenue(t, sess, "Park Square Live Music & Coffee", "San Francisco", "CA")
	createVenue(t, sess, "The Dueling Pianos Bar", "New York", "NY")
	createVenue(t, sess, "100% Rock_Club", "Austin", "TX")

	tests := []struct {
		name  string
		term  string
		names []string
	}{
		{name: "partial match is case insensitive", term: "hop", names: []string{"The Musical Hop"}},
		{name: "matches several", term: "Music", names: []string{"The Musical Hop", "Park Square Live Music & Coffee"}},
		{name: "empty term matches all", term: "", names: []string{"The Musical Hop", "Park Square Live Music & Coffee", "The Dueling Pianos Bar", "100% Rock_Club"}},
		{name: "no match", term: "zzz", names: []string{}},
		{name: "percent is literal", term: "0%", names: []string{"100% Rock_Club"}},
		{name: "underscore is literal", term: "k_c", names: []string{"100% Rock_Club"}},
		{name: "underscore does not act as wildcard", term: "e_D", names: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := sess.Venues.Search(ctx, tt.term, now)
			require.NoError(t, err)
			assert.Equal(t, len(res.Items), res.Count)
			names := []string{}
			for _, item := range res.Items {
				names = append(names, item.Name)
			}
			assert.Equal(t, tt.names, names)
		})
	}
}

func TestVenueSearch_FoldsNonASCIICase(t *testing.T) {
	sess := newTestSession(t)
	now := time.Now()
	hall := createVenue(t, sess, "Éclair Hall", "Paris", "FR")
	odeon := createVenue(t, sess, "Café Ödeon", "Wien", "AT")

	tests := []struct {
		term string
		want []int64
	}{
		{term: "Éclair Hall", want: []int64{hall.ID}},
		{term: "éclair", want: []int64{hall.ID}},
		{term: "ÉCLAIR", want: []int64{hall.ID}},
		{term: "ÖDEON", want: []int64{odeon.ID}},
		{term: "café", want: []int64{odeon.ID}},
		{term: "CAFÉ", want: []int64{odeon.ID}},
		{term: "É", want: []int64{hall.ID, odeon.ID}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			res, err := sess.Venues.Search(ctx, tt.term, now)
			require.NoError(t, err)
			ids := []int64{}
			for _, item := range res.Items {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tt.want, ids)
			assert.Equal(t, len(tt.want), res.Count)
		})
	}
}

func TestArtistSearch_FoldsNonASCIICase(t *testing.T) {
	sess := newTestSession(t)
	a := createArtist(t, sess, "Ólafur Arnalds")

	res, err := sess.Artists.Search(ctx, "óLAFUR", time.Now())
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, a.ID, res.Items[0].ID)
}

func TestArtistSearch_ReportsUpcomingShows(t *testing.T) {
	sess := newTestSession(t)
	now := time.Now()
	v := createVenue(t, sess, "Venue", "Austin", "TX")
	guns := createArtist(t, sess, "Guns N Petals")
	createArtist(t, sess, "Matt Quevedo")
	createShow(t, sess, guns.ID, v.ID, now.Add(24*time.Hour))
	createShow(t, sess, guns.ID, v.ID, now.Add(-24*time.Hour))

	res, err := sess.Artists.Search(ctx, "A", now)
	require.NoError(t, err)
	require.Equal(t, 2, res.Count)
	assert.Equal(t, Summary{ID: guns.ID, Name: "Guns N Petals", NumUpcomingShows: 1}, res.Items[0])

	res, err = sess.Artists.Search(ctx, "band", now)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count)
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
}

// =========================================================================
// SHOWS
// =========================================================================

func TestShowsForVenue_Partition(t *testing.T) {
	sess := newTestSession(t)
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	v := createVenue(t, sess, "Venue", "Austin", "TX")
	a := createArtist(t, sess, "Band")
	past := createShow(t, sess, a.ID, v.ID, now.Add(-30*24*time.Hour))
	createShow(t, sess, a.ID, v.ID, now.Add(10*24*time.Hour))
	createShow(t, sess, a.ID, v.ID, now.Add(2*24*time.Hour))

	p, err := sess.Shows.ForVenue(ctx, v.ID, now)
	require.NoError(t, err)

	require.Len(t, p.Past, 1)
	assert.Equal(t, past.ID, p.Past[0].ShowID)
	assert.Equal(t, "Band", p.Past[0].ArtistName)
	assert.Equal(t, "https://img/Band", p.Past[0].ArtistImageLink)
	assert.True(t, p.Past[0].StartTime.Equal(past.StartTime))

	require.Len(t, p.Upcoming, 2)
	assert.True(t, p.Upcoming[0].StartTime.Before(p.Upcoming[1].StartTime), "upcoming shows are ordered by start time")

	var total int
	require.NoError(t, sess.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM shows WHERE venue_id = ?`, v.ID).Scan(&total))
	assert.Equal(t, total, len(p.Past)+len(p.Upcoming))
}

func TestShowsForVenue_ShowAtReferenceInstantIsNeither(t *testing.T) {
	sess := newTestSession(t)
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	v := createVenue(t, sess, "Venue", "Austin", "TX")
	a := createArtist(t, sess, "Band")
	createShow(t, sess, a.ID, v.ID, now)

	p, err := sess.Shows.ForVenue(ctx, v.ID, now)
	require.NoError(t, err)
	assert.Empty(t, p.Upcoming)
	assert.Empty(t, p.Past)
}

func TestShowsForVenue_NoShows(t *testing.T) {
	sess := newTestSession(t)
	v := createVenue(t, sess, "Quiet", "Austin", "TX")

	p, err := sess.Shows.ForVenue(ctx, v.ID, time.Now())
	require.NoError(t, err)
	assert.NotNil(t, p.Upcoming)
	assert.NotNil(t, p.Past)
	assert.Empty(t, p.Upcoming)
	assert.Empty(t, p.Past)
}

func TestShowsForArtist_PastIsStrictlyBeforeNow(t *testing.T) {
	sess := newTestSession(t)
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	v := createVenue(t, sess, "Venue", "Austin", "TX")
	a := createArtist(t, sess, "Band")
	createShow(t, sess, a.ID, v.ID, now.Add(-24*time.Hour))
	createShow(t, sess, a.ID, v.ID, now.Add(24*time.Hour))

	p, err := sess.Shows.ForArtist(ctx, a.ID, now)
	require.NoError(t, err)
	require.Len(t, p.Upcoming, 1)
	require.Len(t, p.Past, 1)
	assert.True(t, p.Past[0].StartTime.Before(now))
	assert.True(t, p.Upcoming[0].StartTime.After(now))
	assert.Equal(t, "Venue", p.Past[0].VenueName)
	assert.Equal(t, "https://img/Venue", p.Past[0].VenueImageLink)
}

func TestShowListAll_LatestFirst(t *testing.T) {
	sess := newTestSession(t)
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	v := createVenue(t, sess, "Venue", "Austin", "TX")
	a := createArtist(t, sess, "Band")
	createShow(t, sess, a.ID, v.ID, now.Add(-24*time.Hour))
	latest := createShow(t, sess, a.ID, v.ID, now.Add(24*time.Hour))
	createShow(t, sess, a.ID, v.ID, now)

	got, err := sess.Shows.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, latest.ID, got[0].ShowID)
	assert.Equal(t, "Venue", got[0].VenueName)
	assert.Equal(t, "Band", got[0].ArtistName)
	assert.Equal(t, "https://img/Band", got[0].ArtistImageLink)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].StartTime.After(got[i-1].StartTime))
	}
}

// =========================================================================
// UNIT OF WORK
// =========================================================================

func TestTransact_DanglingShowReferenceFails(t *testing.T) {
	sess := newTestSession(t)
	v := createVenue(t, sess, "Venue", "Austin", "TX")

	err := sess.Transact(ctx, "create show", func(uow *UnitOfWork) error {
		return uow.Shows.Create(ctx, &model.Show{ArtistID: 999, VenueID: v.ID, StartTime: time.Now()})
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCommitFailed)
	var ce *CommitError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "create show", ce.Op)

	shows, err := sess.Shows.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, shows)
}

func TestTransact_RollsBackEveryWrite(t *testing.T) {
	sess := newTestSession(t)
	v := createVenue(t, sess, "Original", "Austin", "TX")
	boom := errors.New("boom")

	err := sess.Transact(ctx, "update venue", func(uow *UnitOfWork) error {
		if err := uow.Venues.Update(ctx, &model.Venue{ID: v.ID, Name: "Changed", City: "Paris", State: "FR"}); err != nil {
			return err
		}
		if err := uow.Artists.Create(ctx, &model.Artist{Name: "Half written"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, ErrCommitFailed)
	assert.ErrorIs(t, err, boom)

	got, err := sess.Venues.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	artists, err := sess.Artists.ListAll(ctx, time.Now())
	require.NoError(t, err)
	assert.Empty(t, artists)
}

func TestTransact_Commits(t *testing.T) {
	sess := newTestSession(t)
	a := &model.Artist{Name: "Jane Doe", Genres: model.Genres{"Jazz", "Blues"}}

	require.NoError(t, sess.Transact(ctx, "create artist", func(uow *UnitOfWork) error {
		return uow.Artists.Create(ctx, a)
	}))

	var stored string
	require.NoError(t, sess.conn.QueryRowContext(ctx, `SELECT genres FROM artists WHERE id = ?`, a.ID).Scan(&stored))
	assert.Equal(t, "Jazz, Blues", stored)

	got, err := sess.Artists.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Genres{"Jazz", "Blues"}, got.Genres)
}

func TestSessionClose_IsIdempotent(t *testing.T) {
	store := NewStore(dbtest.Open(t))
	sess, err := store.Session(ctx)
	require.NoError(t, err)
	require.NoError(t, sess.Close())
	require.NoError(t, sess.Close())

	// the single pooled connection is free again
	next, err := store.Session(ctx)
	require.NoError(t, err)
	require.NoError(t, next.Close())
}
