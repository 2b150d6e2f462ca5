package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.flashlog/internal/diag"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <page>",
	Short: "Hex dump a raw page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bad page %q: %w", args[0], err)
		}
		return diag.DumpPage(cmd.OutOrStdout(), db.Store(), page)
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
