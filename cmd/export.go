package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"airdash/adapters/excelreport"
	"airdash/internal/analysis"
)

var (
	exportRoomTypes []string
	exportGroups    []string
	exportPriceMin  float64
	exportPriceMax  float64
	exportBedsMin   float64
	exportBedsMax   float64
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a filtered summary workbook without starting the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, catalog, err := loadTable()
		if err != nil {
			return err
		}

		filter := catalog.DefaultFilter()
		if cmd.Flags().Changed("room-type") {
			filter.RoomTypes = exportRoomTypes
		}
		if cmd.Flags().Changed("group") {
			filter.NeighbourhoodGroups = exportGroups
		}
		if cmd.Flags().Changed("price-min") {
			filter.PriceMin = exportPriceMin
		}
		if cmd.Flags().Changed("price-max") {
			filter.PriceMax = exportPriceMax
		}
		if cmd.Flags().Changed("beds-min") {
			filter.BedsMin = exportBedsMin
		}
		if cmd.Flags().Changed("beds-max") {
			filter.BedsMax = exportBedsMax
		}
		filter.Normalize()

		rows := filter.Apply(table.Listings)

		agg := analysis.NewAggregator(analysis.Options{
			HistogramBins: cfg.Charts.HistogramBins,
			TopHosts:      cfg.Charts.TopHosts,
			TopExpensive:  cfg.Charts.TopExpensive,
		})
		snap, err := agg.Snapshot(context.Background(), filter, rows)
		if err != nil {
			return err
		}

		path, _, err := excelreport.NewWriter(cfg.Export.Dir).Write(snap, rows)
		if err != nil {
			return err
		}

		fmt.Printf("Wrote %s (%d listings)\n", path, len(rows))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringSliceVar(&exportRoomTypes, "room-type", nil, "room types to include (repeatable)")
	exportCmd.Flags().StringSliceVar(&exportGroups, "group", nil, "neighbourhood groups to include (repeatable)")
	exportCmd.Flags().Float64Var(&exportPriceMin, "price-min", 0, "minimum nightly price")
	exportCmd.Flags().Float64Var(&exportPriceMax, "price-max", 0, "maximum nightly price")
	exportCmd.Flags().Float64Var(&exportBedsMin, "beds-min", 0, "minimum bed count")
	exportCmd.Flags().Float64Var(&exportBedsMax, "beds-max", 0, "maximum bed count")
	rootCmd.AddCommand(exportCmd)
}
