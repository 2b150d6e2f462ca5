package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show transfer and recovery counters for this session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		samples, err := db.Metrics().Snapshot()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, s := range samples {
			fmt.Fprintf(out, "%s%s %g\n", s.Name, formatLabels(s.Labels), s.Value)
		}
		return nil
	},
}

func formatLabels(labels map[string]string) string {
	if len(labels) == 0 {
		return ""
	}
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%q", k, labels[k]))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
