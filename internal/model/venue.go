package model

// Venue represents a place that hosts shows.  It corresponds to a row
// in the `venues` table.  A venue owns zero or more shows through
// shows.venue_id.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – display name of the venue.
//  City, State        – location used to group venues into areas.
//  Address            – street address.
//  Phone              – contact phone number.
//  Genres             – genres played at the venue, stored joined by ", ".
//  ImageLink          – URL of the venue's picture.
//  Website            – URL of the venue's website.
//  FacebookLink       – URL of the venue's social profile.
//  SeekingTalent      – whether the venue is currently looking for artists.
//  SeekingDescription – free text shown next to the seeking flag.
type Venue struct {
    ID                 int64  // venues.id
    Name               string // venues.name
    City               string // venues.city
    State              string // venues.state
    Address            string // venues.address
    Phone              string // venues.phone
    Genres             Genres // venues.genres
    ImageLink          string // venues.image_link
    Website            string // venues.website
    FacebookLink       string // venues.facebook_link
    SeekingTalent      bool   // venues.seeking_talent
    SeekingDescription string // venues.seeking_description
}
