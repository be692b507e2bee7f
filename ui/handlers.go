package ui

import (
	"log"
	"net/http"
)

// handleDashboard renders the main page. The page itself fetches chart
// data from the JSON endpoints, so this handler only needs the catalog,
// the current filter and the headline numbers.
func (a *App) handleDashboard(w http.ResponseWriter, r *http.Request) {
	f, err := a.filterFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	rows := f.Apply(a.table.Listings)
	log.Printf("[Dashboard] Rendering with %d of %d listings", len(rows), a.table.Len())

	data := map[string]interface{}{
		"Title":      "Airbnb NYC Accommodation Dashboard",
		"Catalog":    a.catalog,
		"Filter":     f,
		"Metrics":    a.agg.Metrics(rows),
		"Narratives": renderNarratives(),
		"Table":      a.table,
	}
	a.renderTemplate(w, "dashboard.html", data)
}
