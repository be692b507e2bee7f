package listing

import (
	"math"

	"airdash/domain/core"
)

// Listing represents a single short-term rental record from the source file.
// Optional numeric fields hold NaN when the source value is missing or
// unparseable; required fields (price, beds, coordinates) are guaranteed
// present for every listing the loader keeps.
type Listing struct {
	Name               string  `json:"name"`
	HostName           string  `json:"host_name"`
	Neighbourhood      string  `json:"neighbourhood"`
	NeighbourhoodGroup string  `json:"neighbourhood_group"`
	RoomType           string  `json:"room_type"`
	Price              float64 `json:"price"`
	Beds               float64 `json:"beds"`
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	Rating             float64 `json:"rating"`
	NumberOfReviews    float64 `json:"number_of_reviews"`
	ReviewsPerMonth    float64 `json:"reviews_per_month"`
	Availability365    float64 `json:"availability_365"`
}

// HasRating reports whether the listing carries a usable rating value.
func (l Listing) HasRating() bool {
	return !math.IsNaN(l.Rating)
}

// Table holds the fully loaded dataset along with load provenance.
// It is read-only after loading and safe for concurrent readers.
type Table struct {
	Listings    []Listing      `json:"listings"`
	Source      string         `json:"source"`
	LoadedAt    core.Timestamp `json:"loaded_at"`
	RowsRead    int            `json:"rows_read"`
	RowsKept    int            `json:"rows_kept"`
	RowsDropped int            `json:"rows_dropped"`
}

// Len returns the number of listings in the table.
func (t *Table) Len() int { return len(t.Listings) }

// Display bounds for the filter widgets. The price cap intentionally sits
// below the observed maximum so a handful of luxury outliers do not flatten
// the slider; the observed bounds stay available in the catalog.
const (
	DefaultPriceCap  = 500
	DefaultPriceStep = 10
	DefaultBedsFloor = 1
	DefaultBedsCeil  = 8
)

// Catalog describes the filterable surface of a loaded table: the distinct
// categorical values in first-seen order and the numeric bounds.
type Catalog struct {
	RoomTypes           []string `json:"room_types"`
	NeighbourhoodGroups []string `json:"neighbourhood_groups"`
	PriceMin            float64  `json:"price_min"`
	PriceMax            float64  `json:"price_max"`
	PriceCap            float64  `json:"price_cap"`
	PriceStep           float64  `json:"price_step"`
	BedsMin             float64  `json:"beds_min"`
	BedsMax             float64  `json:"beds_max"`
}

// BuildCatalog derives the catalog from a slice of listings.
func BuildCatalog(rows []Listing) *Catalog {
	cat := &Catalog{
		PriceCap:  DefaultPriceCap,
		PriceStep: DefaultPriceStep,
		BedsMin:   DefaultBedsFloor,
		BedsMax:   DefaultBedsCeil,
	}

	seenRoom := make(map[string]bool)
	seenGroup := make(map[string]bool)
	first := true

	for _, l := range rows {
		if l.RoomType != "" && !seenRoom[l.RoomType] {
			seenRoom[l.RoomType] = true
			cat.RoomTypes = append(cat.RoomTypes, l.RoomType)
		}
		if l.NeighbourhoodGroup != "" && !seenGroup[l.NeighbourhoodGroup] {
			seenGroup[l.NeighbourhoodGroup] = true
			cat.NeighbourhoodGroups = append(cat.NeighbourhoodGroups, l.NeighbourhoodGroup)
		}
		if first {
			cat.PriceMin = l.Price
			cat.PriceMax = l.Price
			first = false
			continue
		}
		if l.Price < cat.PriceMin {
			cat.PriceMin = l.Price
		}
		if l.Price > cat.PriceMax {
			cat.PriceMax = l.Price
		}
	}

	return cat
}

// DefaultFilter returns the filter state the dashboard opens with: the full
// categorical selection and moderate price/beds windows that keep the first
// render representative.
func (c *Catalog) DefaultFilter() FilterState {
	return FilterState{
		RoomTypes:           append([]string(nil), c.RoomTypes...),
		NeighbourhoodGroups: append([]string(nil), c.NeighbourhoodGroups...),
		PriceMin:            50,
		PriceMax:            300,
		BedsMin:             1,
		BedsMax:             4,
	}
}
