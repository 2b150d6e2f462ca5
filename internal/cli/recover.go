package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recoverCmd = &cobra.Command{
	Use:   "recover",
	Short: "Show the write and upload cursors found on the image",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cur := db.Cursors()
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "current: %d\n", cur.Current)
		fmt.Fprintf(out, "upload:  %d\n", cur.Upload)
		fmt.Fprintf(out, "state:   %s\n", cur.State)

		ts, err := db.Store().PageTimestamp(cur.Upload)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "upload ts: %d\n", ts)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recoverCmd)
}
