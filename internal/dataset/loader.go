package dataset

import (
	"math"
	"time"

	"airdash/adapters/tabular"
	"airdash/domain/core"
	"airdash/domain/listing"
	"airdash/internal"
	"airdash/internal/errors"
)

// Source column names expected in the listings file.
const (
	ColName               = "name"
	ColHostName           = "host_name"
	ColNeighbourhood      = "neighbourhood"
	ColNeighbourhoodGroup = "neighbourhood_group"
	ColRoomType           = "room_type"
	ColPrice              = "price"
	ColBeds               = "beds"
	ColLatitude           = "latitude"
	ColLongitude          = "longitude"
	ColRating             = "rating"
	ColNumberOfReviews    = "number_of_reviews"
	ColReviewsPerMonth    = "reviews_per_month"
	ColAvailability365    = "availability_365"
)

// requiredColumns must parse for a row to survive loading.
var requiredColumns = []string{ColLatitude, ColLongitude, ColPrice, ColBeds}

// Loader reads the source file and produces the in-memory listings table.
type Loader struct {
	filePath string
	coercer  *tabular.Coercer
	logger   *internal.Logger
}

// NewLoader creates a loader for the given listings file.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
		coercer:  tabular.NewCoercer(),
		logger:   internal.DefaultLogger,
	}
}

// Load reads the file, coerces numeric columns, drops rows missing any
// required value, and returns the table together with its filter catalog.
func (ld *Loader) Load() (*listing.Table, *listing.Catalog, error) {
	start := time.Now()

	raw, err := tabular.NewDataReader(ld.filePath).Read()
	if err != nil {
		return nil, nil, errors.DatasetError("failed to read listings file", err)
	}

	if err := ld.checkColumns(raw.Headers); err != nil {
		return nil, nil, err
	}

	rows := make([]listing.Listing, 0, len(raw.Rows))
	dropped := 0
	for _, rr := range raw.Rows {
		l, ok := ld.buildListing(rr)
		if !ok {
			dropped++
			continue
		}
		rows = append(rows, l)
	}

	table := &listing.Table{
		Listings:    rows,
		Source:      ld.filePath,
		LoadedAt:    core.Now(),
		RowsRead:    len(raw.Rows),
		RowsKept:    len(rows),
		RowsDropped: dropped,
	}
	catalog := listing.BuildCatalog(rows)

	ld.logger.Info("[Loader] Loaded %s: %d rows kept, %d dropped in %.2fms",
		ld.filePath, table.RowsKept, table.RowsDropped,
		float64(time.Since(start).Nanoseconds())/1e6)

	return table, catalog, nil
}

// checkColumns verifies the required columns are present in the header.
func (ld *Loader) checkColumns(headers []string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	for _, col := range requiredColumns {
		if !present[col] {
			return errors.DatasetError("listings file is missing required column: "+col, nil)
		}
	}
	return nil
}

// buildListing converts one raw row; ok is false when a required numeric
// value is missing or unparseable.
func (ld *Loader) buildListing(rr tabular.RawRow) (listing.Listing, bool) {
	price, ok := ld.coercer.ParseNumeric(rr[ColPrice])
	if !ok {
		return listing.Listing{}, false
	}
	beds, ok := ld.coercer.ParseNumeric(rr[ColBeds])
	if !ok {
		return listing.Listing{}, false
	}
	lat, ok := ld.coercer.ParseNumeric(rr[ColLatitude])
	if !ok {
		return listing.Listing{}, false
	}
	lon, ok := ld.coercer.ParseNumeric(rr[ColLongitude])
	if !ok {
		return listing.Listing{}, false
	}

	return listing.Listing{
		Name:               rr[ColName],
		HostName:           rr[ColHostName],
		Neighbourhood:      rr[ColNeighbourhood],
		NeighbourhoodGroup: rr[ColNeighbourhoodGroup],
		RoomType:           rr[ColRoomType],
		Price:              price,
		Beds:               beds,
		Latitude:           lat,
		Longitude:          lon,
		Rating:             ld.optionalNumeric(rr, ColRating),
		NumberOfReviews:    ld.optionalNumeric(rr, ColNumberOfReviews),
		ReviewsPerMonth:    ld.optionalNumeric(rr, ColReviewsPerMonth),
		Availability365:    ld.optionalNumeric(rr, ColAvailability365),
	}, true
}

// optionalNumeric parses an optional column to NaN when absent.
func (ld *Loader) optionalNumeric(rr tabular.RawRow, col string) float64 {
	if v, ok := ld.coercer.ParseNumeric(rr[col]); ok {
		return v
	}
	return math.NaN()
}
