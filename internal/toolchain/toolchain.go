// Package toolchain describes how each language is built, run and cleaned up.
package toolchain

import (
	"fmt"
	"path/filepath"

	"github.com/Parikshit8902/Mint-Pad/internal/lang"
)

const (
	// SourceStem is the base name of the ephemeral source file.
	SourceStem = "temp_run"
	// ExecutableName is the ephemeral build output.
	ExecutableName = "temp_ide_exec"
)

// Artifact is a file a run leaves behind.
type Artifact int

const (
	ArtifactSource Artifact = iota
	ArtifactExecutable
)

// Descriptor is the command set for one language.
type Descriptor struct {
	Language lang.Language
	// Build is zero for interpreted languages.
	Build   Template
	Run     Template
	Cleanup []Artifact
}

// Compiled reports whether the language has a build step.
func (d Descriptor) Compiled() bool { return !d.Build.IsZero() }

// SourcePath is the ephemeral source file for d inside dir.
func (d Descriptor) SourcePath(dir string) string {
	return filepath.Join(dir, SourceStem+d.Language.Extension())
}

// ExecutablePath is the ephemeral build output inside dir, or "" for
// interpreted languages.
func (d Descriptor) ExecutablePath(dir string) string {
	if !d.Compiled() {
		return ""
	}
	return filepath.Join(dir, ExecutableName)
}

// Table maps each language to its descriptor.
type Table map[lang.Language]Descriptor

// Defaults returns the built-in toolchains.
func Defaults() Table {
	return Table{
		lang.Cpp: {
			Language: lang.Cpp,
			Build:    MustParseTemplate("g++ ${src} -o ${exe}"),
			Run:      MustParseTemplate("${exe}"),
			Cleanup:  []Artifact{ArtifactSource, ArtifactExecutable},
		},
		lang.C: {
			Language: lang.C,
			Build:    MustParseTemplate("gcc ${src} -o ${exe}"),
			Run:      MustParseTemplate("${exe}"),
			Cleanup:  []Artifact{ArtifactSource, ArtifactExecutable},
		},
		lang.Python: {
			Language: lang.Python,
			Run:      MustParseTemplate("python3 ${src}"),
			Cleanup:  []Artifact{ArtifactSource},
		},
	}
}

// Lookup returns the descriptor for l.
func (t Table) Lookup(l lang.Language) (Descriptor, bool) {
	d, ok := t[l]
	return d, ok
}

// Override replaces the build and/or run templates of a known language.
// Zero templates leave the existing ones in place.
func (t Table) Override(l lang.Language, build, run Template) error {
	d, ok := t[l]
	if !ok {
		return fmt.Errorf("toolchain %q: unknown language", l)
	}
	if !build.IsZero() {
		d.Build = build
	}
	if !run.IsZero() {
		d.Run = run
	}
	t[l] = d
	return nil
}
