package listing

import (
	"math"
	"testing"
)

func sampleRows() []Listing {
	return []Listing{
		{Name: "Cozy loft", RoomType: "Entire home/apt", NeighbourhoodGroup: "Manhattan", Price: 220, Beds: 2, Latitude: 40.71, Longitude: -74.00, Rating: 4.8},
		{Name: "Shared room near park", RoomType: "Shared room", NeighbourhoodGroup: "Brooklyn", Price: 45, Beds: 1, Latitude: 40.68, Longitude: -73.95, Rating: 4.1},
		{Name: "Private room", RoomType: "Private room", NeighbourhoodGroup: "Queens", Price: 90, Beds: 1, Latitude: 40.73, Longitude: -73.79, Rating: math.NaN()},
		{Name: "Penthouse", RoomType: "Entire home/apt", NeighbourhoodGroup: "Manhattan", Price: 1200, Beds: 5, Latitude: 40.76, Longitude: -73.98, Rating: 4.9},
	}
}

func TestFilterApplyRanges(t *testing.T) {
	rows := sampleRows()
	f := FilterState{PriceMin: 50, PriceMax: 300, BedsMin: 1, BedsMax: 4}

	got := f.Apply(rows)
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	for _, l := range got {
		if l.Price < 50 || l.Price > 300 {
			t.Errorf("row %q outside price range: %f", l.Name, l.Price)
		}
	}
}

func TestFilterSetMembership(t *testing.T) {
	rows := sampleRows()

	tests := []struct {
		name   string
		filter FilterState
		want   int
	}{
		{
			name:   "single room type",
			filter: FilterState{RoomTypes: []string{"Entire home/apt"}, PriceMin: 0, PriceMax: 2000, BedsMin: 0, BedsMax: 10},
			want:   2,
		},
		{
			name:   "empty selection means no restriction",
			filter: FilterState{PriceMin: 0, PriceMax: 2000, BedsMin: 0, BedsMax: 10},
			want:   4,
		},
		{
			name:   "group and room type combined",
			filter: FilterState{RoomTypes: []string{"Entire home/apt"}, NeighbourhoodGroups: []string{"Brooklyn"}, PriceMin: 0, PriceMax: 2000, BedsMin: 0, BedsMax: 10},
			want:   0,
		},
		{
			name:   "unknown group matches nothing",
			filter: FilterState{NeighbourhoodGroups: []string{"Atlantis"}, PriceMin: 0, PriceMax: 2000, BedsMin: 0, BedsMax: 10},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(rows)
			if len(got) != tt.want {
				t.Errorf("expected %d rows, got %d", tt.want, len(got))
			}
		})
	}
}

func TestFilterNormalize(t *testing.T) {
	f := FilterState{PriceMin: 300, PriceMax: 50, BedsMin: -2, BedsMax: 4}
	f.Normalize()

	if f.PriceMin != 50 || f.PriceMax != 300 {
		t.Errorf("expected price range 50..300, got %f..%f", f.PriceMin, f.PriceMax)
	}
	if f.BedsMin != 0 {
		t.Errorf("expected negative beds bound clamped to 0, got %f", f.BedsMin)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	rows := sampleRows()
	f := FilterState{RoomTypes: []string{"Shared room"}, PriceMin: 0, PriceMax: 2000, BedsMin: 0, BedsMax: 10}

	_ = f.Apply(rows)
	if len(rows) != 4 {
		t.Fatalf("input slice mutated: %d rows", len(rows))
	}
	if rows[0].Name != "Cozy loft" {
		t.Errorf("input order changed")
	}
}

func TestBuildCatalog(t *testing.T) {
	cat := BuildCatalog(sampleRows())

	if len(cat.RoomTypes) != 3 {
		t.Errorf("expected 3 room types, got %d: %v", len(cat.RoomTypes), cat.RoomTypes)
	}
	if cat.RoomTypes[0] != "Entire home/apt" {
		t.Errorf("expected first-seen order, got %v", cat.RoomTypes)
	}
	if cat.PriceMin != 45 || cat.PriceMax != 1200 {
		t.Errorf("expected observed price bounds 45..1200, got %f..%f", cat.PriceMin, cat.PriceMax)
	}
	if cat.PriceCap != DefaultPriceCap {
		t.Errorf("expected display cap %d, got %f", DefaultPriceCap, cat.PriceCap)
	}
}

func TestDefaultFilter(t *testing.T) {
	cat := BuildCatalog(sampleRows())
	f := cat.DefaultFilter()

	if f.PriceMin != 50 || f.PriceMax != 300 {
		t.Errorf("expected default price window 50..300, got %f..%f", f.PriceMin, f.PriceMax)
	}
	if f.BedsMin != 1 || f.BedsMax != 4 {
		t.Errorf("expected default beds window 1..4, got %f..%f", f.BedsMin, f.BedsMax)
	}
	if len(f.RoomTypes) != len(cat.RoomTypes) {
		t.Errorf("expected all room types selected by default")
	}
}
