package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.flashlog/internal/diag"
)

var scanList bool

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Read every page header and report how long it took",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := db.Store()
		out := cmd.OutOrStdout()

		res, err := diag.ReadAllPages(store)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d pages, %d with data, %s\n", res.Pages, res.Valid, res.Elapsed)

		if !scanList {
			return nil
		}
		for page := 0; page < store.NumPages(); page++ {
			info, err := diag.Describe(store, page)
			if err != nil {
				return err
			}
			if info.Valid {
				fmt.Fprintf(out, "page %4d ts=%d records=%d\n", info.Page, info.Timestamp, info.Records)
			}
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanList, "list", false, "list pages that hold data")
	rootCmd.AddCommand(scanCmd)
}
