package analysis

import (
	"encoding/json"
	"math"

	"airdash/domain/core"
	"airdash/domain/listing"
)

// jsonFloat marshals NaN as null; encoding/json rejects NaN outright.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(f)) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(f))
}

// KeyMetrics holds the headline numbers shown above the charts.
// Formatted fields carry "n/a" when the underlying value is NaN.
type KeyMetrics struct {
	TotalListings      int     `json:"total_listings"`
	AvgPrice           float64 `json:"avg_price"`
	AvgRating          float64 `json:"avg_rating"`
	AvgPriceFormatted  string  `json:"avg_price_formatted"`
	AvgRatingFormatted string  `json:"avg_rating_formatted"`
}

// MarshalJSON emits the averages as null rather than NaN for empty subsets.
func (m KeyMetrics) MarshalJSON() ([]byte, error) {
	type wire struct {
		TotalListings      int       `json:"total_listings"`
		AvgPrice           jsonFloat `json:"avg_price"`
		AvgRating          jsonFloat `json:"avg_rating"`
		AvgPriceFormatted  string    `json:"avg_price_formatted"`
		AvgRatingFormatted string    `json:"avg_rating_formatted"`
	}
	return json.Marshal(wire{
		TotalListings:      m.TotalListings,
		AvgPrice:           jsonFloat(m.AvgPrice),
		AvgRating:          jsonFloat(m.AvgRating),
		AvgPriceFormatted:  m.AvgPriceFormatted,
		AvgRatingFormatted: m.AvgRatingFormatted,
	})
}

// HistogramBin is one bar of the price distribution.
type HistogramBin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// PriceSummary is the five-number summary backing the box marginal.
type PriceSummary struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// PriceDistribution bundles the histogram and its summary.
type PriceDistribution struct {
	Bins    []HistogramBin `json:"bins"`
	Summary PriceSummary   `json:"summary"`
}

// CategoryCount is a (label, count) pair for bar and pie charts.
type CategoryCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// RatingByGroup is the mean rating for one categorical group.
type RatingByGroup struct {
	Label     string  `json:"label"`
	AvgRating float64 `json:"avg_rating"`
}

// ExpensiveListing is one row of the top-expensive ranking.
type ExpensiveListing struct {
	Name               string  `json:"name"`
	NeighbourhoodGroup string  `json:"neighbourhood_group"`
	Neighbourhood      string  `json:"neighbourhood"`
	Price              float64 `json:"price"`
}

// GroupedPrice is the mean price for one (beds, room type) cell.
type GroupedPrice struct {
	Beds     float64 `json:"beds"`
	RoomType string  `json:"room_type"`
	AvgPrice float64 `json:"avg_price"`
}

// ScatterPoint is one point of the reviews-vs-popularity chart.
type ScatterPoint struct {
	NumberOfReviews float64 `json:"number_of_reviews"`
	ReviewsPerMonth float64 `json:"reviews_per_month"`
	Availability365 float64 `json:"availability_365"`
	RoomType        string  `json:"room_type"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
}

// ReviewScatter carries the scatter series and its Pearson correlation.
type ReviewScatter struct {
	Points               []ScatterPoint `json:"points"`
	Correlation          float64        `json:"correlation"`
	CorrelationFormatted string         `json:"correlation_formatted"`
}

// MarshalJSON emits the correlation as null when too few points exist.
func (s ReviewScatter) MarshalJSON() ([]byte, error) {
	type wire struct {
		Points               []ScatterPoint `json:"points"`
		Correlation          jsonFloat      `json:"correlation"`
		CorrelationFormatted string         `json:"correlation_formatted"`
	}
	return json.Marshal(wire{
		Points:               s.Points,
		Correlation:          jsonFloat(s.Correlation),
		CorrelationFormatted: s.CorrelationFormatted,
	})
}

// MapPoint is one geographic marker.
type MapPoint struct {
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Price         float64 `json:"price"`
	Beds          float64 `json:"beds"`
	RoomType      string  `json:"room_type"`
	Neighbourhood string  `json:"neighbourhood"`
	Name          string  `json:"name"`
}

// DashboardSnapshot is the full set of aggregates for one filter state.
type DashboardSnapshot struct {
	ID                core.SnapshotID     `json:"id"`
	GeneratedAt       core.Timestamp      `json:"generated_at"`
	Filter            listing.FilterState `json:"filter"`
	Empty             bool                `json:"empty"`
	Metrics           KeyMetrics          `json:"metrics"`
	PriceDistribution PriceDistribution   `json:"price_distribution"`
	RoomTypeCounts    []CategoryCount     `json:"room_type_counts"`
	BoroughCounts     []CategoryCount     `json:"borough_counts"`
	TopHosts          []CategoryCount     `json:"top_hosts"`
	RatingsByRoomType []RatingByGroup     `json:"ratings_by_room_type"`
	TopExpensive      []ExpensiveListing  `json:"top_expensive"`
	PriceByBeds       []GroupedPrice      `json:"price_by_beds"`
	ReviewScatter     ReviewScatter       `json:"review_scatter"`
	MapPoints         []MapPoint          `json:"map_points"`
}
