package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c360studio/servicedocs/naics"
)

func searchCmd(flags *rootFlags) *cobra.Command {
	var sector string

	cmd := &cobra.Command{
		Use:   "search [keyword]",
		Short: "Search the classification registry by keyword or sector",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := naics.NewRegistry()

			var records []naics.Record
			switch {
			case len(args) == 1:
				records = registry.SearchByKeyword(args[0])
			case sector != "":
				records = registry.ListBySector(sector)
			default:
				return fmt.Errorf("provide a keyword or --sector")
			}

			if len(records) == 0 {
				fmt.Println("No matching classifications")
				return nil
			}

			for _, r := range records {
				fmt.Printf("%s  %-50s %s %s\n", r.Code, r.Title, r.SectorCode, r.SectorName)
			}
			fmt.Printf("\n%d match(es)\n", len(records))
			return nil
		},
	}

	cmd.Flags().StringVar(&sector, "sector", "", "Two-digit sector code to list (e.g. 54)")

	return cmd
}
