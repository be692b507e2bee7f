package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print a profile of the configured listings file",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, catalog, err := loadTable()
		if err != nil {
			return err
		}

		fmt.Printf("Source:            %s\n", table.Source)
		fmt.Printf("Loaded at:         %s\n", table.LoadedAt)
		fmt.Printf("Rows read:         %d\n", table.RowsRead)
		fmt.Printf("Rows kept:         %d\n", table.RowsKept)
		fmt.Printf("Rows dropped:      %d\n", table.RowsDropped)
		fmt.Printf("Room types:        %s\n", strings.Join(catalog.RoomTypes, ", "))
		fmt.Printf("Boroughs:          %s\n", strings.Join(catalog.NeighbourhoodGroups, ", "))
		fmt.Printf("Observed prices:   $%.0f .. $%.0f\n", catalog.PriceMin, catalog.PriceMax)
		fmt.Printf("Slider price cap:  $%.0f (step $%.0f)\n", catalog.PriceCap, catalog.PriceStep)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
