package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.flashlog/internal/sample"
)

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List the samples in the upload page",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pending, err := db.Pending()
		if err != nil {
			return err
		}
		printSamples(cmd, pending)
		return nil
	},
}

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Print the samples in the upload page and release it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := db.Upload(func(batch []sample.Sample) error {
			printSamples(cmd, batch)
			return nil
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "uploaded %d samples\n", n)
		return nil
	},
}

func printSamples(cmd *cobra.Command, samples []sample.Sample) {
	out := cmd.OutOrStdout()
	for i := range samples {
		samples[i].Print(out)
		fmt.Fprintln(out)
	}
}

func init() {
	rootCmd.AddCommand(pendingCmd)
	rootCmd.AddCommand(uploadCmd)
}
