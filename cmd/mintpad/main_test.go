package main

import (
	"flag"
	"testing"

	"github.com/Parikshit8902/Mint-Pad/internal/config"
	"github.com/Parikshit8902/Mint-Pad/internal/lang"
	"github.com/stretchr/testify/require"
)

func TestParseFlagsOverridesConfig(t *testing.T) {
	t.Parallel()

	cfg := config.Defaults(t.TempDir())
	args, err := parseFlags(cfg, []string{
		"--log-level", "debug",
		"--lang", "python",
		"--dark",
		"--temp-dir", "/var/tmp/mintpad",
		"a.py", "b.c",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"a.py", "b.c"}, args)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, lang.Python, cfg.DefaultLanguage)
	require.True(t, cfg.DarkTheme)
	require.Equal(t, "/var/tmp/mintpad", cfg.TempDir)
}

func TestParseFlagsKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg := config.Defaults(t.TempDir())
	want := *cfg
	args, err := parseFlags(cfg, []string{"run", "main.cpp"})
	require.NoError(t, err)
	require.Equal(t, []string{"run", "main.cpp"}, args)
	require.Equal(t, want.LogLevel, cfg.LogLevel)
	require.Equal(t, want.DefaultLanguage, cfg.DefaultLanguage)
	require.Equal(t, want.TempDir, cfg.TempDir)
	require.False(t, cfg.DarkTheme)
}

func TestParseFlagsRejectsBadValues(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"--lang", "rust"},
		{"--log-level", "loud"},
		{"--no-such-flag"},
	} {
		if _, err := parseFlags(config.Defaults(t.TempDir()), args); err == nil {
			t.Fatalf("parseFlags(%v): expected error", args)
		}
	}
}

func TestParseFlagsHelp(t *testing.T) {
	t.Parallel()

	_, err := parseFlags(config.Defaults(t.TempDir()), []string{"--help"})
	require.ErrorIs(t, err, flag.ErrHelp)
}
