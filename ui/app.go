package ui

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"airdash/adapters/excelreport"
	"airdash/domain/listing"
	"airdash/internal/analysis"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// App represents the dashboard web application. The listings table is
// loaded once and read-only afterwards, so handlers share it freely.
type App struct {
	router    *chi.Mux
	table     *listing.Table
	catalog   *listing.Catalog
	agg       *analysis.Aggregator
	exporter  *excelreport.Writer
	exportDir string
	templates *template.Template
}

// Config holds dashboard application configuration
type Config struct {
	ExportDir string
	ChartOpts analysis.Options
}

// NewApp creates the dashboard application over a loaded table.
func NewApp(config Config, table *listing.Table, catalog *listing.Catalog) (*App, error) {
	funcMap := template.FuncMap{
		"mul": func(a, b float64) float64 { return a * b },
		"add": func(a, b int) int { return a + b },
		"pct": func(part, total int) float64 {
			if total == 0 {
				return 0
			}
			return float64(part) / float64(total) * 100
		},
		"selected": func(values []string, v string) bool {
			for _, s := range values {
				if s == v {
					return true
				}
			}
			return false
		},
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		table:     table,
		catalog:   catalog,
		agg:       analysis.NewAggregator(config.ChartOpts),
		exporter:  excelreport.NewWriter(config.ExportDir),
		exportDir: config.ExportDir,
		templates: templates,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	// Serve static files
	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", staticFS)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	// Main page
	a.router.Get("/", a.handleDashboard)

	// Filter surface and headline metrics
	a.router.Get("/api/filters", a.handleFilters)
	a.router.Get("/api/metrics", a.handleMetrics)

	// Chart data endpoints; all accept the same filter query params
	a.router.Get("/api/charts/price-histogram", a.handlePriceHistogram)
	a.router.Get("/api/charts/room-types", a.handleRoomTypes)
	a.router.Get("/api/charts/top-hosts", a.handleTopHosts)
	a.router.Get("/api/charts/ratings-by-room-type", a.handleRatingsByRoomType)
	a.router.Get("/api/charts/boroughs", a.handleBoroughs)
	a.router.Get("/api/charts/top-expensive", a.handleTopExpensive)
	a.router.Get("/api/charts/price-by-beds", a.handlePriceByBeds)
	a.router.Get("/api/charts/reviews-scatter", a.handleReviewsScatter)
	a.router.Get("/api/charts/map", a.handleMap)

	// Full snapshot and the filtered data table
	a.router.Get("/api/snapshot", a.handleSnapshot)
	a.router.Get("/api/listings/table", a.handleListingsTable)

	// Workbook export
	a.router.Post("/api/export", a.handleExport)
	a.router.Get("/exports/{file}", a.handleDownload)
}

// Router exposes the chi mux, mainly for tests.
func (a *App) Router() http.Handler {
	return a.router
}

// Start starts the HTTP server
func (a *App) Start(port string) error {
	addr := ":" + port
	log.Printf("Starting airdash UI server on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// renderTemplate executes a named template into the response.
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	w.Header().Set("Content-Type", "text/html")
	if err := a.templates.ExecuteTemplate(w, templateName, data); err != nil {
		log.Printf("Template error: %v", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}
