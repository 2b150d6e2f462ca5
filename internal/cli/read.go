package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.flashlog/internal/layout"
	"go.flashlog/internal/sample"
)

var readCmd = &cobra.Command{
	Use:   "read <page> <nth>",
	Short: "Read one record slot",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bad page %q: %w", args[0], err)
		}
		nth, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bad slot %q: %w", args[1], err)
		}

		store := db.Store()
		out := cmd.OutOrStdout()

		var rec layout.Record
		ok, err := store.ReadRecord(page, nth, &rec)
		if err != nil {
			return err
		}
		if !store.InBounds(nth) {
			fmt.Fprintf(out, "slot %d is past the end of the page (%d slots)\n", nth, store.RecordsPerPage())
			return nil
		}
		if !ok {
			fmt.Fprintf(out, "slot %d of page %d is empty\n", nth, page)
			return nil
		}

		s := sample.FromRecord(&rec)
		s.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
}
