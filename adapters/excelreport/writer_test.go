package excelreport

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"airdash/domain/listing"
	"airdash/internal/analysis"
	"airdash/internal/testkit"
)

func buildSnapshot(t *testing.T, rows []listing.Listing) *analysis.DashboardSnapshot {
	t.Helper()
	agg := analysis.NewAggregator(analysis.DefaultOptions())
	snap, err := agg.Snapshot(context.Background(), listing.FilterState{PriceMin: 0, PriceMax: 5000, BedsMin: 0, BedsMax: 10}, rows)
	require.NoError(t, err)
	return snap
}

func TestWriteWorkbook(t *testing.T) {
	rows := testkit.GenerateListings(50, 42)
	snap := buildSnapshot(t, rows)

	dir := t.TempDir()
	path, id, err := NewWriter(dir).Write(snap, rows)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, dir))
	assert.Contains(t, path, id.String())

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, SheetSummary)
	assert.Contains(t, sheets, SheetListings)

	// Summary carries the headline metric labels.
	v, err := f.GetCellValue(SheetSummary, "A4")
	require.NoError(t, err)
	assert.Equal(t, "Total listings", v)

	count, err := f.GetCellValue(SheetSummary, "B4")
	require.NoError(t, err)
	assert.Equal(t, "50", count)

	// Listings sheet has a header plus one row per listing.
	listRows, err := f.GetRows(SheetListings)
	require.NoError(t, err)
	assert.Len(t, listRows, 51)
	assert.Equal(t, "name", listRows[0][0])
}

func TestWriteEmptySubset(t *testing.T) {
	snap := buildSnapshot(t, nil)

	path, _, err := NewWriter(t.TempDir()).Write(snap, nil)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	listRows, err := f.GetRows(SheetListings)
	require.NoError(t, err)
	assert.Len(t, listRows, 1, "only the header row")
}
