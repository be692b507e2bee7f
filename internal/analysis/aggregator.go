package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	gonumstat "gonum.org/v1/gonum/stat"

	"airdash/domain/listing"
)

// Options tunes the chart-shaping operations.
type Options struct {
	HistogramBins int
	TopHosts      int
	TopExpensive  int
}

// DefaultOptions returns the standard chart parameters.
func DefaultOptions() Options {
	return Options{
		HistogramBins: 40,
		TopHosts:      10,
		TopExpensive:  10,
	}
}

// Aggregator computes chart-ready summaries over a filtered row subset.
// All methods treat their input as read-only.
type Aggregator struct {
	opts Options
}

// NewAggregator creates an aggregator with the given options.
func NewAggregator(opts Options) *Aggregator {
	if opts.HistogramBins < 1 {
		opts.HistogramBins = DefaultOptions().HistogramBins
	}
	if opts.TopHosts < 1 {
		opts.TopHosts = DefaultOptions().TopHosts
	}
	if opts.TopExpensive < 1 {
		opts.TopExpensive = DefaultOptions().TopExpensive
	}
	return &Aggregator{opts: opts}
}

// Metrics computes the headline numbers: listing count, mean price,
// mean rating. Rating skips NaN values; an empty subset yields NaN means.
func (a *Aggregator) Metrics(rows []listing.Listing) KeyMetrics {
	m := KeyMetrics{TotalListings: len(rows)}

	prices := make([]float64, 0, len(rows))
	ratings := make([]float64, 0, len(rows))
	for _, l := range rows {
		prices = append(prices, l.Price)
		if l.HasRating() {
			ratings = append(ratings, l.Rating)
		}
	}

	m.AvgPrice = meanOrNaN(prices)
	m.AvgRating = meanOrNaN(ratings)
	m.AvgPriceFormatted = formatValue(m.AvgPrice, "$%.2f")
	m.AvgRatingFormatted = formatValue(m.AvgRating, "%.2f")
	return m
}

// PriceDistribution bins prices into a histogram and computes the
// five-number summary. An empty subset returns zero bins, not an error.
func (a *Aggregator) PriceDistribution(rows []listing.Listing) PriceDistribution {
	if len(rows) == 0 {
		return PriceDistribution{Bins: []HistogramBin{}}
	}

	prices := make([]float64, len(rows))
	for i, l := range rows {
		prices[i] = l.Price
	}
	sort.Float64s(prices)

	min := prices[0]
	max := prices[len(prices)-1]

	dist := PriceDistribution{Summary: a.priceSummary(prices)}

	if min == max {
		// Degenerate distribution: a single bin holds everything.
		dist.Bins = []HistogramBin{{Low: min, High: max, Count: len(prices)}}
		return dist
	}

	dividers := make([]float64, a.opts.HistogramBins+1)
	floats.Span(dividers, min, max)
	// The top edge is exclusive in gonum's histogram; nudge it so the
	// maximum price lands in the last bin.
	dividers[len(dividers)-1] = math.Nextafter(max, math.Inf(1))

	counts := make([]float64, a.opts.HistogramBins)
	gonumstat.Histogram(counts, dividers, prices, nil)

	dist.Bins = make([]HistogramBin, a.opts.HistogramBins)
	for i := range counts {
		dist.Bins[i] = HistogramBin{
			Low:   dividers[i],
			High:  dividers[i+1],
			Count: int(counts[i]),
		}
	}
	dist.Bins[len(dist.Bins)-1].High = max
	return dist
}

func (a *Aggregator) priceSummary(sortedPrices []float64) PriceSummary {
	min, _ := stats.Min(sortedPrices)
	q1, _ := stats.Percentile(sortedPrices, 25)
	median, _ := stats.Median(sortedPrices)
	q3, _ := stats.Percentile(sortedPrices, 75)
	max, _ := stats.Max(sortedPrices)
	return PriceSummary{Min: min, Q1: q1, Median: median, Q3: q3, Max: max}
}

// CountByRoomType counts listings per room type, largest first.
func (a *Aggregator) CountByRoomType(rows []listing.Listing) []CategoryCount {
	return countBy(rows, func(l listing.Listing) string { return l.RoomType }, 0)
}

// CountByBorough counts listings per neighbourhood group, largest first.
func (a *Aggregator) CountByBorough(rows []listing.Listing) []CategoryCount {
	return countBy(rows, func(l listing.Listing) string { return l.NeighbourhoodGroup }, 0)
}

// TopHosts ranks hosts by listing count and keeps the top N.
func (a *Aggregator) TopHosts(rows []listing.Listing) []CategoryCount {
	return countBy(rows, func(l listing.Listing) string { return l.HostName }, a.opts.TopHosts)
}

// RatingsByRoomType computes the mean rating per room type, descending.
// Groups whose every rating is missing are dropped.
func (a *Aggregator) RatingsByRoomType(rows []listing.Listing) []RatingByGroup {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, l := range rows {
		if l.RoomType == "" || !l.HasRating() {
			continue
		}
		sums[l.RoomType] += l.Rating
		counts[l.RoomType]++
	}

	out := make([]RatingByGroup, 0, len(sums))
	for rt, sum := range sums {
		out = append(out, RatingByGroup{Label: rt, AvgRating: sum / float64(counts[rt])})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgRating != out[j].AvgRating {
			return out[i].AvgRating > out[j].AvgRating
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// TopExpensive returns the N highest-priced listings.
func (a *Aggregator) TopExpensive(rows []listing.Listing) []ExpensiveListing {
	sorted := append([]listing.Listing(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })

	n := a.opts.TopExpensive
	if n > len(sorted) {
		n = len(sorted)
	}
	out := make([]ExpensiveListing, n)
	for i := 0; i < n; i++ {
		out[i] = ExpensiveListing{
			Name:               sorted[i].Name,
			NeighbourhoodGroup: sorted[i].NeighbourhoodGroup,
			Neighbourhood:      sorted[i].Neighbourhood,
			Price:              sorted[i].Price,
		}
	}
	return out
}

// PriceByBedsAndRoomType computes the mean price per (beds, room type)
// cell, ordered by beds then room type.
func (a *Aggregator) PriceByBedsAndRoomType(rows []listing.Listing) []GroupedPrice {
	type cell struct {
		beds     float64
		roomType string
	}
	sums := make(map[cell]float64)
	counts := make(map[cell]int)
	for _, l := range rows {
		k := cell{beds: l.Beds, roomType: l.RoomType}
		sums[k] += l.Price
		counts[k]++
	}

	out := make([]GroupedPrice, 0, len(sums))
	for k, sum := range sums {
		out = append(out, GroupedPrice{
			Beds:     k.beds,
			RoomType: k.roomType,
			AvgPrice: sum / float64(counts[k]),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Beds != out[j].Beds {
			return out[i].Beds < out[j].Beds
		}
		return out[i].RoomType < out[j].RoomType
	})
	return out
}

// ReviewScatter builds the reviews-vs-reviews-per-month series and the
// Pearson correlation between the two axes. Rows missing either axis are
// skipped; fewer than two usable points yields a NaN correlation.
func (a *Aggregator) ReviewScatter(rows []listing.Listing) ReviewScatter {
	points := make([]ScatterPoint, 0, len(rows))
	xs := make([]float64, 0, len(rows))
	ys := make([]float64, 0, len(rows))
	for _, l := range rows {
		if math.IsNaN(l.NumberOfReviews) || math.IsNaN(l.ReviewsPerMonth) {
			continue
		}
		size := l.Availability365
		if math.IsNaN(size) {
			size = 0
		}
		points = append(points, ScatterPoint{
			NumberOfReviews: l.NumberOfReviews,
			ReviewsPerMonth: l.ReviewsPerMonth,
			Availability365: size,
			RoomType:        l.RoomType,
			Name:            l.Name,
			Price:           l.Price,
		})
		xs = append(xs, l.NumberOfReviews)
		ys = append(ys, l.ReviewsPerMonth)
	}

	corr := math.NaN()
	if len(xs) >= 2 {
		if r, err := stats.Pearson(xs, ys); err == nil {
			corr = r
		}
	}

	return ReviewScatter{
		Points:               points,
		Correlation:          corr,
		CorrelationFormatted: formatValue(corr, "%.2f"),
	}
}

// MapPoints projects the subset onto geographic markers. The loader
// guarantees coordinates are present on every kept row.
func (a *Aggregator) MapPoints(rows []listing.Listing) []MapPoint {
	out := make([]MapPoint, len(rows))
	for i, l := range rows {
		out[i] = MapPoint{
			Latitude:      l.Latitude,
			Longitude:     l.Longitude,
			Price:         l.Price,
			Beds:          l.Beds,
			RoomType:      l.RoomType,
			Neighbourhood: l.Neighbourhood,
			Name:          l.Name,
		}
	}
	return out
}

// countBy counts rows per key, drops empty keys, sorts largest first
// (label as tiebreak) and keeps the top N when n > 0.
func countBy(rows []listing.Listing, key func(listing.Listing) string, n int) []CategoryCount {
	counts := make(map[string]int)
	for _, l := range rows {
		if k := key(l); k != "" {
			counts[k]++
		}
	}

	out := make([]CategoryCount, 0, len(counts))
	for label, count := range counts {
		out = append(out, CategoryCount{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func meanOrNaN(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return math.NaN()
	}
	return mean
}

func formatValue(v float64, format string) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf(format, v)
}
