package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.flashlog/internal/config"
	"go.flashlog/internal/engine"
)

var (
	homeDir string
	cfgPath string

	cfg    *config.Config
	db     *engine.Database
	inREPL bool
)

var rootCmd = &cobra.Command{
	Use:               "flashlog",
	Short:             "flashlog - sensor record log on a page-erasable flash image",
	SilenceUsage:      true,
	PersistentPreRunE: openDatabase,
	RunE: func(cmd *cobra.Command, args []string) error {
		if inREPL {
			return nil
		}
		startREPL(cmd)
		return nil
	},
}

// loadConfig reads the config once per open database.
func loadConfig(cmd *cobra.Command, args []string) error {
	if cfg != nil {
		return nil
	}

	c, err := config.LoadConfig(homeDir, cfgPath)
	if err != nil {
		return fmt.Errorf("Failed to load config: %w", err)
	}
	cfg = c
	return nil
}

// openDatabase loads the config and opens the image once; REPL commands
// reuse the open database.
func openDatabase(cmd *cobra.Command, args []string) error {
	if db != nil {
		return nil
	}
	if err := loadConfig(cmd, args); err != nil {
		return err
	}

	var err error
	db, err = engine.Open(cfg)
	if err != nil {
		return fmt.Errorf("Failed to open flash image: %w", err)
	}
	return nil
}

func closeDatabase() error {
	cfg = nil
	if db == nil {
		return nil
	}
	err := db.Close()
	db = nil
	return err
}

func Execute() {
	err := rootCmd.Execute()
	if cErr := closeDatabase(); err == nil {
		err = cErr
	}
	if err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "flashlog home directory (default $FLASHLOG_HOME or ~/.local/share/flashlog)")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default <home>/config.yaml)")
}
