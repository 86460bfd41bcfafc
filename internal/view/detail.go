package view

import (
	"github.com/iliyamo/booking-directory/internal/model"
	"github.com/iliyamo/booking-directory/internal/repository"
)

// VenueShow is a show listed on a venue page.
type VenueShow struct {
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueDetail is the full venue page.
type VenueDetail struct {
	ID                 int64       `json:"id"`
	Name               string      `json:"name"`
	Genres             []string    `json:"genres"`
	Address            string      `json:"address"`
	City               string      `json:"city"`
	State              string      `json:"state"`
	Phone              string      `json:"phone"`
	Website            string      `json:"website"`
	FacebookLink       string      `json:"facebook_link"`
	SeekingTalent      bool        `json:"seeking_talent"`
	SeekingDescription string      `json:"seeking_description"`
	ImageLink          string      `json:"image_link"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
	PastShowsCount     int         `json:"past_shows_count"`
}

func venueShows(rows []repository.ShowWithArtist) []VenueShow {
	out := make([]VenueShow, 0, len(rows))
	for _, r := range rows {
		out = append(out, VenueShow{
			ArtistID:        r.ArtistID,
			ArtistName:      r.ArtistName,
			ArtistImageLink: r.ArtistImageLink,
			StartTime:       FormatShowDate(r.StartTime),
		})
	}
	return out
}

// NewVenueDetail combines a venue with its partitioned shows.  The counts
// are the lengths of the two lists.
func NewVenueDetail(v model.Venue, p repository.VenuePartition) VenueDetail {
	upcoming := venueShows(p.Upcoming)
	past := venueShows(p.Past)
	return VenueDetail{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             genreList(v.Genres),
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.Website,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
		UpcomingShows:      upcoming,
		PastShows:          past,
		UpcomingShowsCount: len(upcoming),
		PastShowsCount:     len(past),
	}
}

// ArtistShow is a show listed on an artist page.
type ArtistShow struct {
	VenueID        int64  `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// ArtistDetail is the full artist page.
type ArtistDetail struct {
	ID                 int64        `json:"id"`
	Name               string       `json:"name"`
	Genres             []string     `json:"genres"`
	City               string       `json:"city"`
	State              string       `json:"state"`
	Phone              string       `json:"phone"`
	Website            string       `json:"website"`
	FacebookLink       string       `json:"facebook_link"`
	SeekingVenue       bool         `json:"seeking_venue"`
	SeekingDescription string       `json:"seeking_description"`
	ImageLink          string       `json:"image_link"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
	PastShowsCount     int          `json:"past_shows_count"`
}

func artistShows(rows []repository.ShowWithVenue) []ArtistShow {
	out := make([]ArtistShow, 0, len(rows))
	for _, r := range rows {
		out = append(out, ArtistShow{
			VenueID:        r.VenueID,
			VenueName:      r.VenueName,
			VenueImageLink: r.VenueImageLink,
			StartTime:      FormatShowDate(r.StartTime),
		})
	}
	return out
}

// NewArtistDetail mirrors NewVenueDetail for artists.
func NewArtistDetail(a model.Artist, p repository.ArtistPartition) ArtistDetail {
	upcoming := artistShows(p.Upcoming)
	past := artistShows(p.Past)
	return ArtistDetail{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             genreList(a.Genres),
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.Website,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
		UpcomingShows:      upcoming,
		PastShows:          past,
		UpcomingShowsCount: len(upcoming),
		PastShowsCount:     len(past),
	}
}

// VenueEditForm pre-fills the venue edit form.
type VenueEditForm struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Genres             []string `json:"genres"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Website            string   `json:"website"`
	FacebookLink       string   `json:"facebook_link"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
	ImageLink          string   `json:"image_link"`
}

func NewVenueEditForm(v model.Venue) VenueEditForm {
	return VenueEditForm{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             genreList(v.Genres),
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.Website,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
	}
}

// ArtistEditForm pre-fills the artist edit form.  The website is served
// under the same key the form submits it with.
type ArtistEditForm struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Genres             []string `json:"genres"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	WebsiteLink        string   `json:"website_link"`
	FacebookLink       string   `json:"facebook_link"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
	ImageLink          string   `json:"image_link"`
}

func NewArtistEditForm(a model.Artist) ArtistEditForm {
	return ArtistEditForm{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             genreList(a.Genres),
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		WebsiteLink:        a.Website,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
	}
}

// genreList copies genres so the response never aliases the model and
// never encodes as null.
func genreList(g model.Genres) []string {
	out := make([]string, len(g))
	copy(out, g)
	return out
}
