// Package runner compiles and runs a document in an external terminal.
//
// A run writes the buffer to a fixed temp file per language, builds one shell
// pipeline (build, run, cleanup, wait for Enter) and hands it to a detached
// terminal. The file names are shared by every run of the same language, so
// two runs started back to back race on the same source file.
package runner

import (
	"context"
	"os"

	"github.com/Parikshit8902/Mint-Pad/internal/lang"
	"github.com/Parikshit8902/Mint-Pad/internal/logger"
	"github.com/Parikshit8902/Mint-Pad/internal/storage"
	"github.com/Parikshit8902/Mint-Pad/internal/toolchain"
)

// Options configures an Orchestrator. Zero values fall back to defaults.
type Options struct {
	TempDir    string
	Terminal   Terminal
	Toolchains toolchain.Table
	Launcher   Launcher
}

// Invocation describes a launched run.
type Invocation struct {
	Language   lang.Language
	Source     string
	Executable string
	Pipeline   string
	Command    string
}

// Orchestrator turns (language, content) into a launched terminal.
type Orchestrator struct {
	tempDir    string
	terminal   Terminal
	toolchains toolchain.Table
	launcher   Launcher
}

// New returns an orchestrator.
func New(opts Options) *Orchestrator {
	o := &Orchestrator{
		tempDir:    opts.TempDir,
		terminal:   opts.Terminal,
		toolchains: opts.Toolchains,
		launcher:   opts.Launcher,
	}
	if o.tempDir == "" {
		o.tempDir = os.TempDir()
	}
	if o.terminal.Program == "" {
		o.terminal = DefaultTerminal()
	}
	if o.toolchains == nil {
		o.toolchains = toolchain.Defaults()
	}
	if o.launcher == nil {
		o.launcher = ShellLauncher{}
	}
	return o
}

// Run writes content to the ephemeral source file for l and launches the
// pipeline. A language without a toolchain is a silent no-op that returns a
// nil Invocation. A failed write returns *EphemeralWriteError and launches
// nothing.
func (o *Orchestrator) Run(ctx context.Context, l lang.Language, content string) (*Invocation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d, ok := o.toolchains.Lookup(l)
	if !ok {
		logger.Debugf("run: no toolchain for language %q", l)
		return nil, nil
	}

	vars := toolchain.Vars{
		Source:     d.SourcePath(o.tempDir),
		Executable: d.ExecutablePath(o.tempDir),
	}
	pipeline, err := Pipeline(d, vars)
	if err != nil {
		return nil, err
	}

	if err := storage.WriteScratch(vars.Source, content); err != nil {
		return nil, &EphemeralWriteError{Path: vars.Source, Err: err}
	}

	inv := &Invocation{
		Language:   l,
		Source:     vars.Source,
		Executable: vars.Executable,
		Pipeline:   pipeline,
		Command:    o.terminal.Command(pipeline),
	}
	logger.Infof("run %s: %s", l, inv.Command)
	o.launcher.Launch(inv.Command)
	return inv, nil
}
