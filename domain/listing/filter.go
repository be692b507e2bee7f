package listing

// FilterState holds the current user filter selections. Set filters
// (room types, neighbourhood groups) are membership tests where an empty
// selection means "no restriction"; price and beds are closed ranges.
type FilterState struct {
	RoomTypes           []string `json:"room_types"`
	NeighbourhoodGroups []string `json:"neighbourhood_groups"`
	PriceMin            float64  `json:"price_min"`
	PriceMax            float64  `json:"price_max"`
	BedsMin             float64  `json:"beds_min"`
	BedsMax             float64  `json:"beds_max"`
}

// Normalize repairs inverted ranges and clamps negative bounds to zero.
func (f *FilterState) Normalize() {
	if f.PriceMin < 0 {
		f.PriceMin = 0
	}
	if f.PriceMax < 0 {
		f.PriceMax = 0
	}
	if f.BedsMin < 0 {
		f.BedsMin = 0
	}
	if f.BedsMax < 0 {
		f.BedsMax = 0
	}
	if f.PriceMin > f.PriceMax {
		f.PriceMin, f.PriceMax = f.PriceMax, f.PriceMin
	}
	if f.BedsMin > f.BedsMax {
		f.BedsMin, f.BedsMax = f.BedsMax, f.BedsMin
	}
}

// Matches reports whether a single listing passes every active predicate.
func (f *FilterState) Matches(l Listing) bool {
	if len(f.RoomTypes) > 0 && !containsString(f.RoomTypes, l.RoomType) {
		return false
	}
	if len(f.NeighbourhoodGroups) > 0 && !containsString(f.NeighbourhoodGroups, l.NeighbourhoodGroup) {
		return false
	}
	if l.Price < f.PriceMin || l.Price > f.PriceMax {
		return false
	}
	if l.Beds < f.BedsMin || l.Beds > f.BedsMax {
		return false
	}
	return true
}

// Apply returns the subset of rows matching the filter. The input slice is
// never mutated; the result is a fresh slice.
func (f *FilterState) Apply(rows []Listing) []Listing {
	out := make([]Listing, 0, len(rows))
	for _, l := range rows {
		if f.Matches(l) {
			out = append(out, l)
		}
	}
	return out
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
