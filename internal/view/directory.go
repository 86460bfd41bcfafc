// Package view turns repository rows into the response shapes served by the
// HTTP layer.  Every function here is pure: it reads its arguments and
// returns freshly built values without touching persistence.
package view

import (
	"time"

	"github.com/iliyamo/booking-directory/internal/repository"
)

// ShowDateLayout renders show start times as MM/DD/YYYY.
const ShowDateLayout = "01/02/2006"

// FormatShowDate renders t in ShowDateLayout without timezone conversion.
func FormatShowDate(t time.Time) string {
	return t.Format(ShowDateLayout)
}

// VenueSummary is one venue inside an Area.
type VenueSummary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	City             string `json:"city"`
	State            string `json:"state"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area groups the venues sharing a city and state.
type Area struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

type areaKey struct{ city, state string }

// GroupVenuesByArea buckets venues by (city, state).  Areas appear in the
// order their first venue is encountered and venues keep their input
// order within an area.
func GroupVenuesByArea(listings []repository.VenueListing) []Area {
	areas := []Area{}
	index := make(map[areaKey]int)
	for _, l := range listings {
		k := areaKey{l.City, l.State}
		i, ok := index[k]
		if !ok {
			i = len(areas)
			index[k] = i
			areas = append(areas, Area{City: l.City, State: l.State, Venues: []VenueSummary{}})
		}
		areas[i].Venues = append(areas[i].Venues, VenueSummary{
			ID:               l.ID,
			Name:             l.Name,
			City:             l.City,
			State:            l.State,
			NumUpcomingShows: l.NumUpcomingShows,
		})
	}
	return areas
}

// ArtistSummary is one row of the artist directory.
type ArtistSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ArtistDirectory projects artist listings to id and name.
func ArtistDirectory(listings []repository.ArtistListing) []ArtistSummary {
	out := make([]ArtistSummary, 0, len(listings))
	for _, l := range listings {
		out = append(out, ArtistSummary{ID: l.ID, Name: l.Name})
	}
	return out
}

// SearchHit is one match on a search page.
type SearchHit struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// SearchPage is the body served for a name search.
type SearchPage struct {
	Count      int         `json:"count"`
	Data       []SearchHit `json:"data"`
	SearchTerm string      `json:"search_term"`
}

// SearchResults echoes the term alongside the matches.
func SearchResults(res repository.SearchResult, term string) SearchPage {
	hits := make([]SearchHit, 0, len(res.Items))
	for _, it := range res.Items {
		hits = append(hits, SearchHit{ID: it.ID, Name: it.Name, NumUpcomingShows: it.NumUpcomingShows})
	}
	return SearchPage{Count: len(hits), Data: hits, SearchTerm: term}
}

// ShowEntry is one row of the show directory.
type ShowEntry struct {
	VenueID         int64  `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ShowDirectory formats every listed show, preserving order.
func ShowDirectory(listings []repository.ShowListing) []ShowEntry {
	out := make([]ShowEntry, 0, len(listings))
	for _, l := range listings {
		out = append(out, ShowEntry{
			VenueID:         l.VenueID,
			VenueName:       l.VenueName,
			ArtistID:        l.ArtistID,
			ArtistName:      l.ArtistName,
			ArtistImageLink: l.ArtistImageLink,
			StartTime:       FormatShowDate(l.StartTime),
		})
	}
	return out
}
