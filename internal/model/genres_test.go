package model

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestGenresRoundTrip(t *testing.T) {
    tests := []struct {
        name   string
        genres Genres
        stored string
    }{
        {name: "two genres", genres: Genres{"Jazz", "Blues"}, stored: "Jazz, Blues"},
        {name: "single genre", genres: Genres{"Rock n Roll"}, stored: "Rock n Roll"},
        {name: "empty list", genres: Genres{}, stored: ""},
        {name: "keeps order", genres: Genres{"Swing", "Folk", "Classical"}, stored: "Swing, Folk, Classical"},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            assert.Equal(t, tt.stored, tt.genres.Join())
            assert.Equal(t, tt.genres, SplitGenres(tt.genres.Join()))
        })
    }
}

func TestSplitGenres_DelimiterInsideGenreDoesNotRoundTrip(t *testing.T) {
    g := Genres{"Rock, Pop"}
    assert.Equal(t, Genres{"Rock", "Pop"}, SplitGenres(g.Join()))
}
