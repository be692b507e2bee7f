package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"airdash/domain/listing"
	cfgpkg "airdash/internal/config"
	"airdash/internal/dataset"
)

var (
	// Global flags
	cfgFile  string
	dataFile string

	// Loaded configuration
	cfg *cfgpkg.Config
)

var rootCmd = &cobra.Command{
	Use:   "airdash",
	Short: "airdash: interactive exploration dashboard for rental listings",
	Long:  `airdash loads a CSV or XLSX file of short-term rental listings and serves an interactive dashboard of filters, charts and summary metrics over it.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./airdash.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "listings file, CSV or XLSX (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	if rootCmd.PersistentFlags().Changed("data") && dataFile != "" {
		cfg.Data.File = dataFile
	}
}

// loadTable loads the configured listings file.
func loadTable() (*listing.Table, *listing.Catalog, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("configuration not loaded")
	}
	return dataset.NewLoader(cfg.Data.File).Load()
}
