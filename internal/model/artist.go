package model

// Artist represents a performer that can be booked at a venue.  It
// corresponds to a row in the `artists` table and owns zero or more
// shows through shows.artist_id.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – display name of the artist.
//  City, State        – home location of the artist.
//  Phone              – contact phone number.
//  Genres             – genres the artist plays, stored joined by ", ".
//  ImageLink          – URL of the artist's picture.
//  FacebookLink       – URL of the artist's social profile.
//  SeekingVenue       – whether the artist is currently looking for venues.
//  SeekingDescription – free text shown next to the seeking flag.
//  Website            – URL of the artist's website.
type Artist struct {
    ID                 int64  // artists.id
    Name               string // artists.name
    City               string // artists.city
    State              string // artists.state
    Phone              string // artists.phone
    Genres             Genres // artists.genres
    ImageLink          string // artists.image_link
    FacebookLink       string // artists.facebook_link
    SeekingVenue       bool   // artists.seeking_venue
    SeekingDescription string // artists.seeking_description
    Website            string // artists.website
}
