package query

import (
	"net/url"
	"testing"
)

func TestParseParams(t *testing.T) {
	tests := map[string]struct {
		raw  string
		want State
	}{
		"empty params resolve to defaults": {
			raw:  "",
			want: DefaultState(),
		},
		"all keys set": {
			raw: "search=phone&category=laptops&sortBy=price&sortOrder=desc",
			want: State{
				Search:    "phone",
				Category:  "laptops",
				SortBy:    SortByPrice,
				SortOrder: OrderDesc,
			},
		},
		"unknown sort values fall back": {
			raw: "sortBy=weight&sortOrder=sideways",
			want: State{
				Search:    "",
				Category:  CategoryAll,
				SortBy:    SortByTitle,
				SortOrder: OrderAsc,
			},
		},
		"rating and stock are valid sort fields": {
			raw: "sortBy=stock",
			want: State{
				Search:    "",
				Category:  CategoryAll,
				SortBy:    SortByStock,
				SortOrder: OrderAsc,
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			params, err := url.ParseQuery(tc.raw)
			if err != nil {
				t.Fatalf("parse query: %v", err)
			}
			got := ParseParams(params)
			if got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestParamsOmitsDefaults(t *testing.T) {
	t.Run("default state yields empty params", func(t *testing.T) {
		params := DefaultState().Params()
		if len(params) != 0 {
			t.Fatalf("expected empty params, got %v", params)
		}
	})

	t.Run("only non-default keys are present", func(t *testing.T) {
		s := State{Search: "", Category: "beauty", SortBy: SortByTitle, SortOrder: OrderDesc}
		params := s.Params()

		if got := params.Get("category"); got != "beauty" {
			t.Fatalf("category = %q", got)
		}
		if got := params.Get("sortOrder"); got != "desc" {
			t.Fatalf("sortOrder = %q", got)
		}
		if params.Has("search") || params.Has("sortBy") {
			t.Fatalf("default keys should be omitted, got %v", params)
		}
	})
}

func TestParamsRoundTrip(t *testing.T) {
	states := []State{
		DefaultState(),
		{Search: "phone", Category: CategoryAll, SortBy: SortByTitle, SortOrder: OrderAsc},
		{Search: "", Category: "laptops", SortBy: SortByRating, SortOrder: OrderDesc},
		{Search: "red lipstick", Category: CategoryAll, SortBy: SortByPrice, SortOrder: OrderAsc},
		{Search: "", Category: CategoryAll, SortBy: SortByStock, SortOrder: OrderDesc},
	}

	for _, s := range states {
		got := ParseParams(s.Params())
		if got != s {
			t.Fatalf("round trip changed state: got %+v, want %+v", got, s)
		}
	}
}

func TestFetchMode(t *testing.T) {
	tests := map[string]struct {
		state State
		want  FetchMode
	}{
		"search wins over category": {
			state: State{Search: "phone", Category: "laptops"},
			want:  FetchMode{Kind: FetchSearch, Search: "phone"},
		},
		"whitespace search is inactive": {
			state: State{Search: "   ", Category: "laptops"},
			want:  FetchMode{Kind: FetchByCategory, Category: "laptops"},
		},
		"search is trimmed": {
			state: State{Search: "  phone "},
			want:  FetchMode{Kind: FetchSearch, Search: "phone"},
		},
		"category all is inactive": {
			state: State{Category: CategoryAll},
			want:  FetchMode{Kind: FetchAll},
		},
		"nothing active lists everything": {
			state: DefaultState(),
			want:  FetchMode{Kind: FetchAll},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tc.state.FetchMode(); got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}
