package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.flashlog/internal/flash"
)

var initCmd = &cobra.Command{
	Use:               "init",
	Short:             "Create an erased flash image at the configured path",
	Args:              cobra.NoArgs,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		geo := cfg.Geometry()
		if err := flash.Create(cfg.Image, geo); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s: %d pages of %d bytes\n", cfg.Image, geo.NumPages, geo.PageSize)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
