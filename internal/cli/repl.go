package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Starts an interactive command session
// Forwards commands to cobra
func startREPL(root *cobra.Command) {
	inREPL = true
	defer func() { inREPL = false }()

	reader := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("flashlog> ")

		if !reader.Scan() {
			return
		}

		input := strings.TrimSpace(reader.Text())
		if input == "" {
			continue
		}

		// Errors are printed by cobra
		_ = execLine(root, strings.Fields(input))
	}
}

// execLine runs one command line. Command flags are bound to package
// variables, so they go back to their defaults before every line;
// persistent flags such as --home keep their value for the session.
func execLine(root *cobra.Command, args []string) error {
	resetFlags(root)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func resetFlags(cmd *cobra.Command) {
	cmd.LocalNonPersistentFlags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
