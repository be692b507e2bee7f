package ui

import (
	"encoding/json"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"airdash/internal/errors"
)

// writeJSON encodes a payload as JSON with the right headers.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[API] Failed to encode response: %v", err)
	}
}

// writeError maps an AppError code onto an HTTP status.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}

// handleFilters returns the filter catalog and the default selections.
func (a *App) handleFilters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"catalog": a.catalog,
		"default": a.catalog.DefaultFilter(),
	})
}

// handleMetrics returns the headline metrics for the filtered subset.
func (a *App) handleMetrics(w http.ResponseWriter, r *http.Request) {
	rows, _, err := a.filteredRows(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.agg.Metrics(rows))
}

func (a *App) handlePriceHistogram(w http.ResponseWriter, r *http.Request) {
	rows, _, err := a.filteredRows(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.agg.PriceDistribution(rows))
}

func (a *App) handleRoomTypes(w http.ResponseWriter, r *http.Request) {
	rows, _, err := a.filteredRows(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.agg.CountByRoomType(rows))
}

func (a *App) handleTopHosts(w http.ResponseWriter, r *http.Request) {
	rows, _, err := a.filteredRows(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.agg.TopHosts(rows))
}

func (a *App) handleRatingsByRoomType(w http.ResponseWriter, r *http.Request) {
	rows, _, err := a.filteredRows(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.agg.RatingsByRoomType(rows))
}

func (a *App) handleBoroughs(w http.ResponseWriter, r *http.Request) {
	rows, _, err := a.filteredRows(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.agg.CountByBorough(rows))
}

func (a *App) handleTopExpensive(w http.ResponseWriter, r *http.Request) {
	rows, _, err := a.filteredRows(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.agg.TopExpensive(rows))
}

func (a *App) handlePriceByBeds(w http.ResponseWriter, r *http.Request) {
	rows, _, err := a.filteredRows(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.agg.PriceByBedsAndRoomType(rows))
}

func (a *App) handleReviewsScatter(w http.ResponseWriter, r *http.Request) {
	rows, _, err := a.filteredRows(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.agg.ReviewScatter(rows))
}

// handleMap returns geographic markers; an empty subset is flagged so the
// client can show its "no map data" notice.
func (a *App) handleMap(w http.ResponseWriter, r *http.Request) {
	rows, _, err := a.filteredRows(r)
	if err != nil {
		writeError(w, err)
		return
	}
	points := a.agg.MapPoints(rows)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"points": points,
		"empty":  len(points) == 0,
	})
}

// handleSnapshot returns every chart aggregate in one response.
func (a *App) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	rows, f, err := a.filteredRows(r)
	if err != nil {
		writeError(w, err)
		return
	}
	snap, err := a.agg.Snapshot(r.Context(), f, rows)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// tableRow is the column subset shown in the data table.
type tableRow struct {
	Name          string  `json:"name"`
	Neighbourhood string  `json:"neighbourhood"`
	RoomType      string  `json:"room_type"`
	Price         float64 `json:"price"`
	Beds          float64 `json:"beds"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

// handleListingsTable returns the filtered rows for the data table view.
func (a *App) handleListingsTable(w http.ResponseWriter, r *http.Request) {
	rows, _, err := a.filteredRows(r)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]tableRow, len(rows))
	for i, l := range rows {
		out[i] = tableRow{
			Name:          l.Name,
			Neighbourhood: l.Neighbourhood,
			RoomType:      l.RoomType,
			Price:         l.Price,
			Beds:          l.Beds,
			Latitude:      l.Latitude,
			Longitude:     l.Longitude,
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rows":  out,
		"count": len(out),
	})
}

// handleExport writes the filtered subset and its summary as a workbook
// and returns a download link.
func (a *App) handleExport(w http.ResponseWriter, r *http.Request) {
	rows, f, err := a.filteredRows(r)
	if err != nil {
		writeError(w, err)
		return
	}

	snap, err := a.agg.Snapshot(r.Context(), f, rows)
	if err != nil {
		writeError(w, err)
		return
	}

	path, id, err := a.exporter.Write(snap, rows)
	if err != nil {
		writeError(w, err)
		return
	}

	file := filepath.Base(path)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"export_id": id.String(),
		"file":      file,
		"url":       "/exports/" + file,
		"listings":  len(rows),
	})
}

// handleDownload serves a previously exported workbook.
func (a *App) handleDownload(w http.ResponseWriter, r *http.Request) {
	file := filepath.Base(chi.URLParam(r, "file"))
	if !strings.HasPrefix(file, "airdash_export_") || !strings.HasSuffix(file, ".xlsx") {
		writeError(w, errors.NotFound("export"))
		return
	}
	w.Header().Set("Content-Disposition", "attachment; filename="+file)
	http.ServeFile(w, r, filepath.Join(a.exportDir, file))
}
