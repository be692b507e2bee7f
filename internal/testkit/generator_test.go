package testkit

import (
	"math"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	a := GenerateListings(100, 7)
	b := GenerateListings(100, 7)

	if len(a) != 100 || len(b) != 100 {
		t.Fatalf("expected 100 listings, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			// NaN != NaN; compare fields that matter for determinism.
			if a[i].Name != b[i].Name || a[i].Price != b[i].Price || a[i].Beds != b[i].Beds {
				t.Fatalf("same seed produced different listings at index %d", i)
			}
		}
	}
}

func TestGeneratePlausibleValues(t *testing.T) {
	rows := GenerateListings(500, 42)

	missing := 0
	for _, l := range rows {
		if l.Price < 20 {
			t.Errorf("price below floor: %f", l.Price)
		}
		if l.Beds < 1 || l.Beds > 5 {
			t.Errorf("beds out of range: %f", l.Beds)
		}
		if l.Latitude < 40 || l.Latitude > 41.5 {
			t.Errorf("latitude outside NYC: %f", l.Latitude)
		}
		if math.IsNaN(l.Rating) {
			missing++
		} else if l.Rating < 3 || l.Rating > 5 {
			t.Errorf("rating out of range: %f", l.Rating)
		}
	}

	// Roughly the configured share of rows should carry no rating.
	if missing == 0 || missing > 200 {
		t.Errorf("unexpected missing-rating count: %d of %d", missing, len(rows))
	}
}

func TestGenerateCoversBoroughs(t *testing.T) {
	rows := GenerateListings(500, 42)

	groups := make(map[string]bool)
	for _, l := range rows {
		groups[l.NeighbourhoodGroup] = true
	}
	if len(groups) != 5 {
		t.Errorf("expected all 5 boroughs represented, got %d", len(groups))
	}
}
