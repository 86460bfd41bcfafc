package service

import (
	"context"

	"github.com/iliyamo/booking-directory/internal/repository"
	"github.com/iliyamo/booking-directory/internal/view"
)

// VenueDirectory lists every venue grouped by city and state.
func (s *DirectoryService) VenueDirectory(ctx context.Context) ([]view.Area, error) {
	var areas []view.Area
	err := s.withSession(ctx, func(sess *repository.Session) error {
		listings, err := sess.Venues.ListAll(ctx, s.now())
		if err != nil {
			return err
		}
		areas = view.GroupVenuesByArea(listings)
		return nil
	})
	return areas, err
}

// SearchVenues finds venues whose name contains term.
func (s *DirectoryService) SearchVenues(ctx context.Context, term string) (view.SearchPage, error) {
	var page view.SearchPage
	err := s.withSession(ctx, func(sess *repository.Session) error {
		res, err := sess.Venues.Search(ctx, term, s.now())
		if err != nil {
			return err
		}
		page = view.SearchResults(res, term)
		return nil
	})
	return page, err
}

// VenueDetail returns the venue page.  It fails with
// repository.ErrVenueNotFound when id does not exist.
func (s *DirectoryService) VenueDetail(ctx context.Context, id int64) (view.VenueDetail, error) {
	var d view.VenueDetail
	err := s.withSession(ctx, func(sess *repository.Session) error {
		v, err := sess.Venues.GetByID(ctx, id)
		if err != nil {
			return err
		}
		p, err := sess.Shows.ForVenue(ctx, id, s.now())
		if err != nil {
			return err
		}
		d = view.NewVenueDetail(*v, p)
		return nil
	})
	return d, err
}

func (s *DirectoryService) VenueEditForm(ctx context.Context, id int64) (view.VenueEditForm, error) {
	var f view.VenueEditForm
	err := s.withSession(ctx, func(sess *repository.Session) error {
		v, err := sess.Venues.GetByID(ctx, id)
		if err != nil {
			return err
		}
		f = view.NewVenueEditForm(*v)
		return nil
	})
	return f, err
}

// ArtistDirectory lists every artist by id and name.
func (s *DirectoryService) ArtistDirectory(ctx context.Context) ([]view.ArtistSummary, error) {
	var out []view.ArtistSummary
	err := s.withSession(ctx, func(sess *repository.Session) error {
		listings, err := sess.Artists.ListAll(ctx, s.now())
		if err != nil {
			return err
		}
		out = view.ArtistDirectory(listings)
		return nil
	})
	return out, err
}

func (s *DirectoryService) SearchArtists(ctx context.Context, term string) (view.SearchPage, error) {
	var page view.SearchPage
	err := s.withSession(ctx, func(sess *repository.Session) error {
		res, err := sess.Artists.Search(ctx, term, s.now())
		if err != nil {
			return err
		}
		page = view.SearchResults(res, term)
		return nil
	})
	return page, err
}

// ArtistDetail returns the artist page, or repository.ErrArtistNotFound.
func (s *DirectoryService) ArtistDetail(ctx context.Context, id int64) (view.ArtistDetail, error) {
	var d view.ArtistDetail
	err := s.withSession(ctx, func(sess *repository.Session) error {
		a, err := sess.Artists.GetByID(ctx, id)
		if err != nil {
			return err
		}
		p, err := sess.Shows.ForArtist(ctx, id, s.now())
		if err != nil {
			return err
		}
		d = view.NewArtistDetail(*a, p)
		return nil
	})
	return d, err
}

func (s *DirectoryService) ArtistEditForm(ctx context.Context, id int64) (view.ArtistEditForm, error) {
	var f view.ArtistEditForm
	err := s.withSession(ctx, func(sess *repository.Session) error {
		a, err := sess.Artists.GetByID(ctx, id)
		if err != nil {
			return err
		}
		f = view.NewArtistEditForm(*a)
		return nil
	})
	return f, err
}

// ShowDirectory lists every show, latest first.
func (s *DirectoryService) ShowDirectory(ctx context.Context) ([]view.ShowEntry, error) {
	var out []view.ShowEntry
	err := s.withSession(ctx, func(sess *repository.Session) error {
		listings, err := sess.Shows.ListAll(ctx)
		if err != nil {
			return err
		}
		out = view.ShowDirectory(listings)
		return nil
	})
	return out, err
}
