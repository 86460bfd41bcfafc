// Package form decodes submitted form fields into domain inputs.
package form

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/iliyamo/booking-directory/internal/model"
)

// Values is a read-only view over a form submission.
type Values struct {
	v url.Values
}

// NewValues wraps raw submission values.
func NewValues(v url.Values) Values {
	return Values{v: v}
}

// Get returns the first value for key, or "" when absent.
func (f Values) Get(key string) string {
	return f.v.Get(key)
}

// List returns every value submitted for key, never nil.
func (f Values) List(key string) []string {
	vals := f.v[key]
	out := make([]string, len(vals))
	copy(out, vals)
	return out
}

// Has reports whether key was submitted at all, even with an empty value.
func (f Values) Has(key string) bool {
	_, ok := f.v[key]
	return ok
}

// genres drops blank entries: an empty genre would be stored as nothing
// and could not be read back.
func genres(f Values) model.Genres {
	out := model.Genres{}
	for _, g := range f.List("genres") {
		if strings.TrimSpace(g) != "" {
			out = append(out, g)
		}
	}
	return out
}

// VenueInput carries the venue fields of a create or edit submission.
type VenueInput struct {
	Venue model.Venue
}

// DecodeVenue reads a venue submission.  seeking_talent is true whenever the
// key is present, whatever its value.
func DecodeVenue(f Values) VenueInput {
	return VenueInput{Venue: model.Venue{
		Name:               f.Get("name"),
		City:               f.Get("city"),
		State:              f.Get("state"),
		Address:            f.Get("address"),
		Phone:              f.Get("phone"),
		Genres:             genres(f),
		ImageLink:          f.Get("image_link"),
		Website:            f.Get("website_link"),
		FacebookLink:       f.Get("facebook_link"),
		SeekingTalent:      f.Has("seeking_talent"),
		SeekingDescription: f.Get("seeking_description"),
	}}
}

// ArtistInput carries the artist fields of a create or edit submission.
type ArtistInput struct {
	Artist model.Artist
}

// DecodeArtist reads an artist submission.  seeking_venue follows the same
// presence rule as seeking_talent.
func DecodeArtist(f Values) ArtistInput {
	return ArtistInput{Artist: model.Artist{
		Name:               f.Get("name"),
		City:               f.Get("city"),
		State:              f.Get("state"),
		Phone:              f.Get("phone"),
		Genres:             genres(f),
		ImageLink:          f.Get("image_link"),
		FacebookLink:       f.Get("facebook_link"),
		SeekingVenue:       f.Has("seeking_venue"),
		SeekingDescription: f.Get("seeking_description"),
		Website:            f.Get("website_link"),
	}}
}

// ShowInput keeps the raw show fields.  They are parsed by Show when the
// show is being created.
type ShowInput struct {
	ArtistID  string
	VenueID   string
	StartTime string
}

func DecodeShow(f Values) ShowInput {
	return ShowInput{
		ArtistID:  f.Get("artist_id"),
		VenueID:   f.Get("venue_id"),
		StartTime: f.Get("start_time"),
	}
}

// TimeLayouts are the accepted start_time formats, tried in order.  Values
// without a zone are read as UTC.
var TimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

var ErrInvalidStartTime = errors.New("invalid start_time")

// Show parses the raw fields into a show.
func (in ShowInput) Show() (model.Show, error) {
	artistID, err := parseID("artist_id", in.ArtistID)
	if err != nil {
		return model.Show{}, err
	}
	venueID, err := parseID("venue_id", in.VenueID)
	if err != nil {
		return model.Show{}, err
	}
	start, err := ParseStartTime(in.StartTime)
	if err != nil {
		return model.Show{}, err
	}
	return model.Show{ArtistID: artistID, VenueID: venueID, StartTime: start}, nil
}

func parseID(field, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, raw, err)
	}
	return id, nil
}

// ParseStartTime accepts any of TimeLayouts.
func ParseStartTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range TimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidStartTime, raw)
}
