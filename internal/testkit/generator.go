package testkit

import (
	"fmt"
	"math"
	"math/rand"

	"airdash/domain/listing"
)

// GeneratorConfig configures the synthetic listings generator
type GeneratorConfig struct {
	ListingCount int     `json:"listing_count"`
	HostCount    int     `json:"host_count"`
	MissingRate  float64 `json:"missing_rate"` // share of rows with missing rating
	Seed         int64   `json:"seed"`
}

// DefaultGeneratorConfig returns sensible defaults for listing generation
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		ListingCount: 500,
		HostCount:    80,
		MissingRate:  0.15,
		Seed:         42,
	}
}

// Borough centres and price baselines the generator samples around.
var boroughs = []struct {
	name      string
	lat, lon  float64
	basePrice float64
}{
	{"Manhattan", 40.7831, -73.9712, 220},
	{"Brooklyn", 40.6782, -73.9442, 140},
	{"Queens", 40.7282, -73.7949, 100},
	{"Bronx", 40.8448, -73.8648, 85},
	{"Staten Island", 40.5795, -74.1502, 75},
}

var roomTypes = []struct {
	name       string
	multiplier float64
}{
	{"Entire home/apt", 1.0},
	{"Private room", 0.55},
	{"Shared room", 0.3},
}

// ListingGenerator generates deterministic synthetic rental listings
type ListingGenerator struct {
	config GeneratorConfig
	rng    *rand.Rand
}

// NewListingGenerator creates a new listing generator
func NewListingGenerator(config GeneratorConfig) *ListingGenerator {
	return &ListingGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate produces the configured number of synthetic listings.
func (g *ListingGenerator) Generate() []listing.Listing {
	rows := make([]listing.Listing, 0, g.config.ListingCount)

	for i := 0; i < g.config.ListingCount; i++ {
		borough := boroughs[g.rng.Intn(len(boroughs))]
		room := roomTypes[g.rng.Intn(len(roomTypes))]

		beds := float64(1 + g.rng.Intn(5))
		price := borough.basePrice * room.multiplier * (0.6 + g.rng.Float64()) * (0.8 + beds*0.2)
		price = math.Round(price)
		if price < 20 {
			price = 20
		}

		rating := 3.0 + g.rng.Float64()*2.0
		if g.rng.Float64() < g.config.MissingRate {
			rating = math.NaN()
		}

		reviews := float64(g.rng.Intn(300))
		perMonth := reviews / (6 + g.rng.Float64()*48)

		rows = append(rows, listing.Listing{
			Name:               fmt.Sprintf("%s %s #%03d", borough.name, room.name, i+1),
			HostName:           fmt.Sprintf("host_%03d", g.rng.Intn(g.config.HostCount)+1),
			Neighbourhood:      fmt.Sprintf("%s area %d", borough.name, g.rng.Intn(12)+1),
			NeighbourhoodGroup: borough.name,
			RoomType:           room.name,
			Price:              price,
			Beds:               beds,
			Latitude:           borough.lat + g.rng.NormFloat64()*0.03,
			Longitude:          borough.lon + g.rng.NormFloat64()*0.03,
			Rating:             rating,
			NumberOfReviews:    reviews,
			ReviewsPerMonth:    perMonth,
			Availability365:    float64(g.rng.Intn(366)),
		})
	}

	return rows
}

// GenerateListings is a convenience wrapper with count and seed.
func GenerateListings(n int, seed int64) []listing.Listing {
	config := DefaultGeneratorConfig()
	config.ListingCount = n
	config.Seed = seed
	return NewListingGenerator(config).Generate()
}
