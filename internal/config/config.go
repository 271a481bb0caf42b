// Package config resolves editor settings from defaults, the optional
// config.hcl file and the environment, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Parikshit8902/Mint-Pad/internal/lang"
	"github.com/Parikshit8902/Mint-Pad/internal/toolchain"
	"golang.org/x/sys/unix"
)

// Terminal is the program that hosts runs.
type Terminal struct {
	Program string
	Args    []string
}

// Config is the resolved editor configuration.
type Config struct {
	// Home is where Mint_Pad keeps its config file and log.
	Home string
	// ConfigFile is the HCL settings file, read when present.
	ConfigFile string
	// LogFile receives log output while the console owns the terminal.
	LogFile string

	// Debug forces debug-level logging.
	Debug bool
	// LogLevel is a logger level name.
	LogLevel string
	// Journal also sends logs to the systemd journal.
	Journal bool

	// TempDir holds the ephemeral run artifacts.
	TempDir string
	// Terminal hosts runs.
	Terminal Terminal
	// Toolchains are the per-language build and run commands.
	Toolchains toolchain.Table

	// DefaultLanguage is assigned to blank documents.
	DefaultLanguage lang.Language
	// Font is the editor font description.
	Font string
	// DarkTheme selects the dark palette.
	DarkTheme bool
	// SaveBeforeRun writes titled, modified documents before running them.
	SaveBeforeRun bool
}

// Defaults returns the built-in settings rooted at home.
func Defaults(home string) *Config {
	return &Config{
		Home:       home,
		ConfigFile: filepath.Join(home, "config.hcl"),
		LogFile:    filepath.Join(home, "mintpad.log"),
		LogLevel:   "info",
		TempDir:    os.TempDir(),
		Terminal: Terminal{
			Program: "gnome-terminal",
			Args:    []string{"--", "bash", "-c"},
		},
		Toolchains:      toolchain.Defaults(),
		DefaultLanguage: lang.Default,
		Font:            "Monospace 11",
		SaveBeforeRun:   true,
	}
}

// Load resolves the configuration from defaults, config.hcl and the
// environment.
func Load() (*Config, error) {
	home := getenvFirst("MINTPAD_HOME_DIR", "MINTPAD_HOME")
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		home = filepath.Join(userHome, ".mintpad")
	}
	if err := os.MkdirAll(home, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create mintpad home: %w", err)
	}

	cfg := Defaults(home)
	if path := os.Getenv("MINTPAD_CONFIG"); path != "" {
		cfg.ConfigFile = path
	}
	if err := cfg.ApplyFile(cfg.ConfigFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if isTrue(os.Getenv("DEBUG")) || isTrue(os.Getenv("MINTPAD_DEBUG")) {
		c.Debug = true
	}
	if v := os.Getenv("MINTPAD_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("MINTPAD_JOURNAL"); v != "" {
		c.Journal = isTrue(v)
	}
	if v := os.Getenv("MINTPAD_TEMP_DIR"); v != "" {
		c.TempDir = v
	}
	if v := os.Getenv("MINTPAD_LANGUAGE"); v != "" {
		l, err := lang.Parse(v)
		if err != nil {
			return fmt.Errorf("invalid MINTPAD_LANGUAGE: %w", err)
		}
		c.DefaultLanguage = l
	}
	return nil
}

// Warnings lists settings that will probably fail at use time.
func (c *Config) Warnings() []string {
	var out []string
	if err := unix.Access(c.TempDir, unix.W_OK|unix.X_OK); err != nil {
		out = append(out, fmt.Sprintf("temp dir %s is not writable: %v", c.TempDir, err))
	}
	if strings.TrimSpace(c.Terminal.Program) == "" {
		out = append(out, "no terminal program configured")
	}
	return out
}

func getenvFirst(primary, fallback string) string {
	if val := os.Getenv(primary); val != "" {
		return val
	}
	return os.Getenv(fallback)
}

func isTrue(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}
