// Package query models the catalog page's filter/search/sort state and its
// round-trip through URL query parameters.
package query

import (
	"net/url"
	"strings"
)

type SortBy string

const (
	SortByTitle  SortBy = "title"
	SortByPrice  SortBy = "price"
	SortByRating SortBy = "rating"
	SortByStock  SortBy = "stock"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// CategoryAll is the sentinel for "no category filter".
const CategoryAll = "all"

// State is the active catalog view state. The zero value is not meaningful;
// use DefaultState or ParseParams.
type State struct {
	Search    string    `json:"search"`
	Category  string    `json:"category"`
	SortBy    SortBy    `json:"sortBy"`
	SortOrder SortOrder `json:"sortOrder"`
}

func DefaultState() State {
	return State{
		Search:    "",
		Category:  CategoryAll,
		SortBy:    SortByTitle,
		SortOrder: OrderAsc,
	}
}

// ParseParams derives a State from URL query parameters. Missing keys resolve
// to defaults; unknown sort values fall back to title/asc.
func ParseParams(params url.Values) State {
	s := DefaultState()

	if v := params.Get("search"); v != "" {
		s.Search = v
	}
	if v := params.Get("category"); v != "" {
		s.Category = v
	}
	switch SortBy(params.Get("sortBy")) {
	case SortByPrice:
		s.SortBy = SortByPrice
	case SortByRating:
		s.SortBy = SortByRating
	case SortByStock:
		s.SortBy = SortByStock
	}
	if SortOrder(params.Get("sortOrder")) == OrderDesc {
		s.SortOrder = OrderDesc
	}

	return s
}

// Params renders the state as a minimal canonical query string: keys whose
// value equals the default are omitted.
func (s State) Params() url.Values {
	params := url.Values{}
	if s.Search != "" {
		params.Set("search", s.Search)
	}
	if s.Category != "" && s.Category != CategoryAll {
		params.Set("category", s.Category)
	}
	if s.SortBy != "" && s.SortBy != SortByTitle {
		params.Set("sortBy", string(s.SortBy))
	}
	if s.SortOrder != "" && s.SortOrder != OrderAsc {
		params.Set("sortOrder", string(s.SortOrder))
	}
	return params
}

// FetchMode selects which catalog fetch the page needs. A non-empty search
// always wins over an active category filter.
type FetchMode struct {
	Kind     FetchKind
	Search   string
	Category string
}

type FetchKind int

const (
	FetchAll FetchKind = iota
	FetchSearch
	FetchByCategory
)

func (s State) FetchMode() FetchMode {
	if q := strings.TrimSpace(s.Search); q != "" {
		return FetchMode{Kind: FetchSearch, Search: q}
	}
	if s.Category != "" && s.Category != CategoryAll {
		return FetchMode{Kind: FetchByCategory, Category: s.Category}
	}
	return FetchMode{Kind: FetchAll}
}
