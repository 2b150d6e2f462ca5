package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var eraseAll bool

var eraseCmd = &cobra.Command{
	Use:   "erase [page]",
	Short: "Erase one page, or every page with --all",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := db.Store()

		var pages []int
		switch {
		case eraseAll:
			for p := 0; p < store.NumPages(); p++ {
				pages = append(pages, p)
			}
		case len(args) == 1:
			page, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("bad page %q: %w", args[0], err)
			}
			pages = append(pages, page)
		default:
			return fmt.Errorf("give a page or --all")
		}

		for _, p := range pages {
			if err := store.Pager().ErasePage(p); err != nil {
				return err
			}
		}

		// The cursors no longer match the image; recover on next use.
		if err := closeDatabase(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "erased %d pages\n", len(pages))
		return nil
	},
}

func init() {
	eraseCmd.Flags().BoolVar(&eraseAll, "all", false, "erase the whole image")
	rootCmd.AddCommand(eraseCmd)
}
