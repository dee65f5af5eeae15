//go:generate mockgen -source=advice.go -destination=advice_mock.go -package=advice
package advice

import (
	"context"
	"strings"

	"adviceslip/internal/app/errors"
)

// Item is a single piece of advice as returned by the api
type Item struct {
	ID   int    `json:"id"`
	Text string `json:"advice"`
}

// ResultSet holds search matches in server order, empty means no matches
type ResultSet []Item

// Source fetches advice from a remote api
type Source interface {
	// Random returns one random item
	Random(ctx context.Context) (Item, error)
	// Search returns every item matching query, a response without matches is an empty set
	Search(ctx context.Context, query string) (ResultSet, error)
}

// NormalizeQuery trims the query and rejects empty or whitespace-only input
func NormalizeQuery(query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", errors.ErrEmptyQuery
	}

	return query, nil
}
