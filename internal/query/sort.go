package query

import (
	"sort"
	"strings"

	"github.com/andreasstove999/storefront-service-go/internal/catalog"
)

// SortProducts returns a new slice ordered by the given field. The input is
// never mutated, so repeated sorts are idempotent and safe for concurrent
// renders of the same listing. The sort is stable; an unknown field sorts by
// title.
func SortProducts(products []catalog.Product, by SortBy, order SortOrder) []catalog.Product {
	out := make([]catalog.Product, len(products))
	copy(out, products)

	cmp := comparator(by)
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if order == OrderDesc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func comparator(by SortBy) func(a, b catalog.Product) int {
	switch by {
	case SortByPrice:
		return func(a, b catalog.Product) int { return cmpFloat(a.Price, b.Price) }
	case SortByRating:
		return func(a, b catalog.Product) int { return cmpFloat(a.Rating, b.Rating) }
	case SortByStock:
		return func(a, b catalog.Product) int { return a.Stock - b.Stock }
	default:
		return func(a, b catalog.Product) int { return strings.Compare(a.Title, b.Title) }
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
