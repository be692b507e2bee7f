package analysis

import (
	"context"
	"testing"

	"airdash/domain/listing"
	"airdash/internal/testkit"
)

func TestSnapshotAssemblesAllCharts(t *testing.T) {
	rows := testkit.GenerateListings(400, 42)
	agg := NewAggregator(DefaultOptions())

	filter := listing.FilterState{PriceMin: 0, PriceMax: 5000, BedsMin: 0, BedsMax: 10}
	snap, err := agg.Snapshot(context.Background(), filter, rows)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	if snap.ID.String() == "" {
		t.Error("snapshot should carry an ID")
	}
	if snap.Empty {
		t.Error("snapshot over 400 rows should not be empty")
	}
	if snap.Metrics.TotalListings != 400 {
		t.Errorf("expected 400 listings, got %d", snap.Metrics.TotalListings)
	}
	if len(snap.PriceDistribution.Bins) == 0 {
		t.Error("expected histogram bins")
	}
	if len(snap.RoomTypeCounts) == 0 || len(snap.BoroughCounts) == 0 {
		t.Error("expected categorical counts")
	}
	if len(snap.TopHosts) == 0 || len(snap.TopHosts) > DefaultOptions().TopHosts {
		t.Errorf("unexpected top hosts length: %d", len(snap.TopHosts))
	}
	if len(snap.TopExpensive) != DefaultOptions().TopExpensive {
		t.Errorf("expected %d top expensive rows, got %d", DefaultOptions().TopExpensive, len(snap.TopExpensive))
	}
	if len(snap.MapPoints) != 400 {
		t.Errorf("expected one map point per row, got %d", len(snap.MapPoints))
	}
	if len(snap.ReviewScatter.Points) != 400 {
		t.Errorf("expected 400 scatter points, got %d", len(snap.ReviewScatter.Points))
	}
}

func TestSnapshotCancelledContext(t *testing.T) {
	rows := testkit.GenerateListings(100, 42)
	agg := NewAggregator(DefaultOptions())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	snap, err := agg.Snapshot(ctx, listing.FilterState{}, rows)
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if snap != nil {
		t.Errorf("expected nil snapshot on cancellation, got %v", snap)
	}
}

func TestSnapshotEmptySubset(t *testing.T) {
	agg := NewAggregator(DefaultOptions())

	snap, err := agg.Snapshot(context.Background(), listing.FilterState{}, nil)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	if !snap.Empty {
		t.Error("expected Empty=true for zero rows")
	}
	if snap.Metrics.AvgPriceFormatted != "n/a" {
		t.Errorf("expected n/a price, got %q", snap.Metrics.AvgPriceFormatted)
	}
	if len(snap.PriceDistribution.Bins) != 0 {
		t.Error("expected zero histogram bins")
	}
	if len(snap.MapPoints) != 0 {
		t.Error("expected no map points")
	}
}
