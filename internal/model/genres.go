package model

import "strings"

// GenreDelimiter separates genres in their stored form.  A genre that
// itself contains the delimiter will be split into several genres when
// read back, and an empty genre is lost.
const GenreDelimiter = ", "

// Genres is an ordered list of genre names.
type Genres []string

// Join returns the stored representation of the list.
func (g Genres) Join() string {
    return strings.Join(g, GenreDelimiter)
}

// SplitGenres parses a stored genre string.  An empty string yields an
// empty list.
func SplitGenres(s string) Genres {
    if s == "" {
        return Genres{}
    }
    return Genres(strings.Split(s, GenreDelimiter))
}
