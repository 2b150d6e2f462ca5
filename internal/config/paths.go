package config

import (
	"os"
	"path/filepath"
)

type Paths struct {
	Home   string
	Config string
	Image  string
	LogDir string
}

// Allow user to set app home through env variable
// otherwise default to ~/.local/share/flashlog

func ResolvePaths(homeOverride, configOverride string) (*Paths, error) {
	home := homeOverride
	if home == "" {
		home = os.Getenv("FLASHLOG_HOME")
	}

	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		home = filepath.Join(userHome, ".local", "share", "flashlog")
	}

	if err := os.MkdirAll(home, 0o755); err != nil {
		return nil, err
	}

	cfgPath := configOverride
	if cfgPath == "" {
		cfgPath = filepath.Join(home, "config.yaml")
	}

	logDir := filepath.Join(home, "log")
	_ = os.MkdirAll(logDir, 0o755)

	return &Paths{
		Home:   home,
		Config: cfgPath,
		Image:  filepath.Join(home, "flash.img"),
		LogDir: logDir,
	}, nil
}
