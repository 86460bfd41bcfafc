package repository

import (
	"context"
	"strings"
	"time"
)

// Summary is the lightweight record returned by name searches.
type Summary struct {
	ID               int64
	Name             string
	NumUpcomingShows int
}

// SearchResult holds the matches of a name search.  Count always equals
// len(Items).
type SearchResult struct {
	Count int
	Items []Summary
}

// likeEscaper makes LIKE wildcards in user input match literally.  The
// queries declare '!' as their ESCAPE character.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern builds a "contains" LIKE pattern.  Case is folded by the
// query, which applies LOWER to both the column and the pattern.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// searchNames runs a search query taking (now, pattern) arguments and
// scanning (id, name, upcoming count) rows.
func searchNames(ctx context.Context, db DBTX, query, term string, now time.Time) (SearchResult, error) {
	rows, err := db.QueryContext(ctx, query, now.UTC(), containsPattern(term))
	if err != nil {
		return SearchResult{}, err
	}
	defer rows.Close()

	items := []Summary{}
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.Name, &s.NumUpcomingShows); err != nil {
			return SearchResult{}, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return SearchResult{}, err
	}
	return SearchResult{Count: len(items), Items: items}, nil
}
