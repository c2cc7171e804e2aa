package domain

import (
	"net/url"
	"testing"
)

func TestDisplayName(t *testing.T) {
	if got := CategoryScopes.DisplayName(); got != "Scopes & Sights" {
		t.Errorf("scopes: got %q", got)
	}
	if got := CategoryCleaningKits.DisplayName(); got != "Cleaning Kits" {
		t.Errorf("cleaning-kits: got %q", got)
	}
	if got := Category("mystery").DisplayName(); got != "mystery" {
		t.Errorf("unknown category must pass through, got %q", got)
	}
}

func TestFilterFromQuery(t *testing.T) {
	t.Run("category present", func(t *testing.T) {
		values, _ := url.ParseQuery("category=holsters")
		f := FilterFromQuery(values)
		if f.Category != CategoryHolsters {
			t.Fatalf("got %q", f.Category)
		}
	})

	t.Run("no category", func(t *testing.T) {
		f := FilterFromQuery(url.Values{})
		if f.Category != "" {
			t.Fatalf("expected unconstrained filter, got %q", f.Category)
		}
	})
}

func TestFilterMatches(t *testing.T) {
	p := Product{ID: 2, Title: "Red Dot Reflex Sight", Category: CategoryScopes, Price: 189.99, Rating: 5}

	cases := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"zero filter matches all", Filter{}, true},
		{"matching category", Filter{Category: CategoryScopes}, true},
		{"other category", Filter{Category: CategoryTargets}, false},
		{"under price ceiling", Filter{PriceMax: 200}, true},
		{"over price ceiling", Filter{PriceMax: 100}, false},
		{"rating met", Filter{MinRating: 4.5}, true},
		{"rating not met", Filter{MinRating: 5.5}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filter.Matches(p); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}
