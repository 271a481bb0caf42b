package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Parikshit8902/Mint-Pad/internal/config"
	"github.com/Parikshit8902/Mint-Pad/internal/console"
	"github.com/Parikshit8902/Mint-Pad/internal/dialog"
	"github.com/Parikshit8902/Mint-Pad/internal/lang"
	"github.com/Parikshit8902/Mint-Pad/internal/logger"
	"github.com/Parikshit8902/Mint-Pad/internal/runner"
	"github.com/Parikshit8902/Mint-Pad/internal/session"
	"github.com/Parikshit8902/Mint-Pad/internal/storage"
	"github.com/Parikshit8902/Mint-Pad/internal/version"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	args, err := parseFlags(cfg, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		printUsage()
		return nil
	}
	if err != nil {
		return err
	}

	if len(args) > 0 {
		switch args[0] {
		case "help":
			printUsage()
			return nil
		case "version":
			fmt.Println("mintpad " + version.RichVersion())
			return nil
		case "run":
			if len(args) != 2 {
				return errors.New("usage: mintpad run <file>")
			}
			if err := setupLogging(cfg, os.Stderr); err != nil {
				return err
			}
			return runFile(cfg, args[1])
		}
	}

	return edit(cfg, args)
}

// edit starts the interactive console with files opened in tabs.
func edit(cfg *config.Config, files []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	if err := setupLogging(cfg, logFile); err != nil {
		return err
	}

	var (
		lineIO console.IO
		width  int
	)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		t, err := console.OpenTerminal(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		defer t.Close()
		lineIO, width = t, t.Width()
	} else {
		lineIO = console.NewPlainIO(os.Stdin, os.Stdout)
	}

	for _, w := range cfg.Warnings() {
		fmt.Fprintf(lineIO, "warning: %s\n", w)
		logger.Warnf("%s", w)
	}

	dialogs := dialog.NewConsole(lineIO, lineIO)
	if wd, err := os.Getwd(); err == nil {
		dialogs.Dir = wd
	}

	mgr := session.NewManager(session.NewStore(session.Options{
		DefaultLanguage: cfg.DefaultLanguage,
	}), dialogs)
	for _, f := range files {
		// Failures were already shown by the dialog service.
		_, _ = mgr.Create(ctx, f)
	}

	shell := console.New(console.Options{
		Manager:       mgr,
		Runner:        newRunner(cfg),
		Dialogs:       dialogs,
		IO:            lineIO,
		Width:         width,
		Font:          cfg.Font,
		Dark:          cfg.DarkTheme,
		SaveBeforeRun: cfg.SaveBeforeRun,
	})

	logger.Infof("mintpad %s started in %s", version.Version(), dialogs.Dir)
	err = shell.Run(ctx)
	logger.Infof("mintpad exiting")
	return err
}

// runFile launches a file from disk without opening the console.
func runFile(cfg *config.Config, path string) error {
	content, err := storage.ReadText(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	l := lang.FromPath(path)
	inv, err := newRunner(cfg).Run(context.Background(), l, content)
	if err != nil {
		return err
	}
	if inv == nil {
		return fmt.Errorf("no toolchain configured for %s", l.DisplayName())
	}
	fmt.Printf("Launched %s in %s\n", filepath.Base(path), cfg.Terminal.Program)
	return nil
}

func newRunner(cfg *config.Config) *runner.Orchestrator {
	return runner.New(runner.Options{
		TempDir:    cfg.TempDir,
		Terminal:   runner.Terminal{Program: cfg.Terminal.Program, Args: cfg.Terminal.Args},
		Toolchains: cfg.Toolchains,
	})
}

func setupLogging(cfg *config.Config, w io.Writer) error {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if cfg.Debug && level > logger.LevelDebug {
		level = logger.LevelDebug
	}
	logger.SetOutput(w)
	logger.SetLevel(level)
	if cfg.Journal {
		if err := logger.EnableJournal(); err != nil {
			logger.Warnf("journal logging unavailable: %v", err)
		}
	}
	return nil
}

func parseFlags(cfg *config.Config, args []string) ([]string, error) {
	fs := flag.NewFlagSet("mintpad", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	logLevel := fs.String("log-level", "", "Log level (trace|debug|info|warn|error)")
	language := fs.String("lang", "", "Language for new documents (cpp|c|python)")
	dark := fs.Bool("dark", false, "Start with the dark theme")
	tempDir := fs.String("temp-dir", "", "Directory for run artifacts")
	showHelp := fs.Bool("help", false, "Show help")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *showHelp {
		return nil, flag.ErrHelp
	}

	if *logLevel != "" {
		if _, err := logger.ParseLevel(*logLevel); err != nil {
			return nil, fmt.Errorf("invalid --log-level: %w", err)
		}
		cfg.LogLevel = *logLevel
	}
	if *language != "" {
		l, err := lang.Parse(*language)
		if err != nil {
			return nil, fmt.Errorf("invalid --lang: %w", err)
		}
		cfg.DefaultLanguage = l
	}
	if *dark {
		cfg.DarkTheme = true
	}
	if *tempDir != "" {
		cfg.TempDir = *tempDir
	}

	return fs.Args(), nil
}

func printUsage() {
	fmt.Println(`mintpad - a small multi-tab editor that runs C, C++ and Python

Usage:
  mintpad [flags] [files...]  Open files in tabs (a blank tab when none)
  mintpad run <file>          Build and run a file in a new terminal
  mintpad help                Show this help message
  mintpad version             Show version information

Environment Variables:
  MINTPAD_HOME_DIR   Config directory (default: ~/.mintpad)
  MINTPAD_CONFIG     Settings file (default: $MINTPAD_HOME_DIR/config.hcl)
  MINTPAD_LOG_LEVEL  Log level (default: info)
  MINTPAD_JOURNAL    Also log to the systemd journal (true/1)
  MINTPAD_TEMP_DIR   Directory for run artifacts (default: system temp)
  MINTPAD_LANGUAGE   Language for new documents (default: cpp)
  DEBUG              Enable debug logging (true/1)

Flags:
  --log-level   Log level (trace|debug|info|warn|error)
  --lang        Language for new documents (cpp|c|python)
  --dark        Start with the dark theme
  --temp-dir    Directory for run artifacts

Inside the editor type :help for the command list.`)
}
