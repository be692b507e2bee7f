package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"airdash/internal/analysis"
	"airdash/ui"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, catalog, err := loadTable()
		if err != nil {
			return err
		}

		port := cfg.Server.Port
		if cmd.Flags().Changed("port") && servePort != "" {
			port = servePort
		}

		app, err := ui.NewApp(ui.Config{
			ExportDir: cfg.Export.Dir,
			ChartOpts: analysis.Options{
				HistogramBins: cfg.Charts.HistogramBins,
				TopHosts:      cfg.Charts.TopHosts,
				TopExpensive:  cfg.Charts.TopExpensive,
			},
		}, table, catalog)
		if err != nil {
			return err
		}

		log.Printf("Dashboard available on http://localhost:%s", port)
		return app.Start(port)
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "HTTP port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
