package excelreport

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"airdash/domain/core"
	"airdash/domain/listing"
	"airdash/internal/analysis"
	"airdash/internal/errors"
)

// Sheet names in the exported workbook.
const (
	SheetSummary  = "Summary"
	SheetListings = "Listings"
)

// Writer exports a dashboard snapshot plus the filtered rows as an Excel
// workbook under the configured directory.
type Writer struct {
	dir string
}

// NewWriter creates a writer that places workbooks in dir, creating it on
// first use.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Write creates the workbook and returns its path and export ID.
func (w *Writer) Write(snap *analysis.DashboardSnapshot, rows []listing.Listing) (string, core.ExportID, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", "", errors.ExportError("failed to create export directory", err)
	}

	id := core.ExportID(core.NewID())
	path := filepath.Join(w.dir, fmt.Sprintf("airdash_export_%s.xlsx", id.String()))

	f := excelize.NewFile()
	defer f.Close()

	if err := w.writeSummary(f, snap); err != nil {
		return "", "", err
	}
	if err := w.writeListings(f, rows); err != nil {
		return "", "", err
	}

	// Drop the default sheet excelize creates.
	f.SetActiveSheet(0)
	_ = f.DeleteSheet("Sheet1")

	if err := f.SaveAs(path); err != nil {
		return "", "", errors.ExportError("failed to save workbook", err)
	}

	log.Printf("[ExcelReport] Wrote %s (%d listings)", path, len(rows))
	return path, id, nil
}

func (w *Writer) writeSummary(f *excelize.File, snap *analysis.DashboardSnapshot) error {
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return errors.ExportError("failed to create summary sheet", err)
	}

	rows := [][]interface{}{
		{"Generated at", snap.GeneratedAt.String()},
		{"Snapshot ID", snap.ID.String()},
		{},
		{"Total listings", snap.Metrics.TotalListings},
		{"Average price", snap.Metrics.AvgPriceFormatted},
		{"Average rating", snap.Metrics.AvgRatingFormatted},
		{"Reviews correlation", snap.ReviewScatter.CorrelationFormatted},
		{},
		{"Listings by room type"},
	}
	for _, c := range snap.RoomTypeCounts {
		rows = append(rows, []interface{}{c.Label, c.Count})
	}
	rows = append(rows, []interface{}{}, []interface{}{"Listings by borough"})
	for _, c := range snap.BoroughCounts {
		rows = append(rows, []interface{}{c.Label, c.Count})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.ExportError("failed to compute cell coordinates", err)
		}
		if err := f.SetSheetRow(SheetSummary, cell, &row); err != nil {
			return errors.ExportError("failed to write summary row", err)
		}
	}
	return nil
}

func (w *Writer) writeListings(f *excelize.File, rows []listing.Listing) error {
	if _, err := f.NewSheet(SheetListings); err != nil {
		return errors.ExportError("failed to create listings sheet", err)
	}

	header := []interface{}{
		"name", "host_name", "neighbourhood", "neighbourhood_group",
		"room_type", "price", "beds", "latitude", "longitude", "rating",
	}
	if err := f.SetSheetRow(SheetListings, "A1", &header); err != nil {
		return errors.ExportError("failed to write listings header", err)
	}

	for i, l := range rows {
		record := []interface{}{
			l.Name, l.HostName, l.Neighbourhood, l.NeighbourhoodGroup,
			l.RoomType, l.Price, l.Beds, l.Latitude, l.Longitude, ratingCell(l),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.ExportError("failed to compute cell coordinates", err)
		}
		if err := f.SetSheetRow(SheetListings, cell, &record); err != nil {
			return errors.ExportError("failed to write listings row", err)
		}
	}
	return nil
}

// ratingCell converts a NaN rating into an empty cell rather than "NaN".
func ratingCell(l listing.Listing) interface{} {
	if math.IsNaN(l.Rating) {
		return ""
	}
	return l.Rating
}
