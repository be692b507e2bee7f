package analysis

import (
	"context"

	"golang.org/x/sync/errgroup"

	"airdash/domain/core"
	"airdash/domain/listing"
)

// Snapshot assembles every chart aggregate for one filtered subset. The
// individual aggregations are independent, so they run concurrently; each
// goroutine writes a distinct snapshot field.
func (a *Aggregator) Snapshot(ctx context.Context, filter listing.FilterState, rows []listing.Listing) (*DashboardSnapshot, error) {
	snap := &DashboardSnapshot{
		ID:          core.SnapshotID(core.NewID()),
		GeneratedAt: core.Now(),
		Filter:      filter,
		Empty:       len(rows) == 0,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		snap.Metrics = a.Metrics(rows)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		snap.PriceDistribution = a.PriceDistribution(rows)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		snap.RoomTypeCounts = a.CountByRoomType(rows)
		snap.BoroughCounts = a.CountByBorough(rows)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		snap.TopHosts = a.TopHosts(rows)
		snap.TopExpensive = a.TopExpensive(rows)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		snap.RatingsByRoomType = a.RatingsByRoomType(rows)
		snap.PriceByBeds = a.PriceByBedsAndRoomType(rows)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		snap.ReviewScatter = a.ReviewScatter(rows)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		snap.MapPoints = a.MapPoints(rows)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}
