package ui

import (
	"net/http"
	"strconv"

	"airdash/domain/listing"
	"airdash/internal/errors"
)

// Filter query parameter names shared by every chart endpoint.
const (
	paramRoomType = "room_type"
	paramGroup    = "group"
	paramPriceMin = "price_min"
	paramPriceMax = "price_max"
	paramBedsMin  = "beds_min"
	paramBedsMax  = "beds_max"
)

// filterFromRequest builds a FilterState from query parameters, falling
// back to the catalog defaults for anything not supplied. A malformed
// numeric parameter is an INVALID_INPUT error.
func (a *App) filterFromRequest(r *http.Request) (listing.FilterState, error) {
	f := a.catalog.DefaultFilter()
	q := r.URL.Query()

	if rooms, ok := q[paramRoomType]; ok {
		f.RoomTypes = rooms
	}
	if groups, ok := q[paramGroup]; ok {
		f.NeighbourhoodGroups = groups
	}

	var err error
	if f.PriceMin, err = numericParam(q.Get(paramPriceMin), f.PriceMin); err != nil {
		return f, errors.InvalidInput("price_min must be a number")
	}
	if f.PriceMax, err = numericParam(q.Get(paramPriceMax), f.PriceMax); err != nil {
		return f, errors.InvalidInput("price_max must be a number")
	}
	if f.BedsMin, err = numericParam(q.Get(paramBedsMin), f.BedsMin); err != nil {
		return f, errors.InvalidInput("beds_min must be a number")
	}
	if f.BedsMax, err = numericParam(q.Get(paramBedsMax), f.BedsMax); err != nil {
		return f, errors.InvalidInput("beds_max must be a number")
	}

	f.Normalize()
	return f, nil
}

// filteredRows applies the request's filter to the loaded table.
func (a *App) filteredRows(r *http.Request) ([]listing.Listing, listing.FilterState, error) {
	f, err := a.filterFromRequest(r)
	if err != nil {
		return nil, f, err
	}
	return f.Apply(a.table.Listings), f, nil
}

func numericParam(raw string, fallback float64) (float64, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(raw, 64)
}
