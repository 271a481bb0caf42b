package runner

import (
	"fmt"
	"strings"

	"github.com/Parikshit8902/Mint-Pad/internal/toolchain"
)

const (
	compileFailedMessage = "echo '--- COMPILATION FAILED ---'"
	holdOpen             = "echo; read -p 'Press Enter to close...'"
)

// Terminal is the program that hosts a run. The escaped pipeline is appended
// as one double-quoted argument after Args.
type Terminal struct {
	Program string
	Args    []string
}

// DefaultTerminal opens a GNOME terminal running bash.
func DefaultTerminal() Terminal {
	return Terminal{Program: "gnome-terminal", Args: []string{"--", "bash", "-c"}}
}

// Command wraps pipeline into the full terminal command line.
func (t Terminal) Command(pipeline string) string {
	parts := append([]string{t.Program}, t.Args...)
	parts = append(parts, `"`+EscapeQuotes(pipeline)+`"`)
	return strings.Join(parts, " ")
}

// EscapeQuotes escapes every double quote so the pipeline survives being
// wrapped in one.
func EscapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// Pipeline assembles the shell pipeline for one run:
//
//	compiled:    <build> && <run> || <failed>; <cleanup>; <hold>
//	interpreted: <run>; <cleanup>; <hold>
func Pipeline(d toolchain.Descriptor, vars toolchain.Vars) (string, error) {
	run, err := d.Run.Render(vars)
	if err != nil {
		return "", fmt.Errorf("%s run command: %w", d.Language, err)
	}
	cleanup := cleanupCommand(d, vars)

	if !d.Compiled() {
		return fmt.Sprintf("%s; %s; %s", run, cleanup, holdOpen), nil
	}
	build, err := d.Build.Render(vars)
	if err != nil {
		return "", fmt.Errorf("%s build command: %w", d.Language, err)
	}
	return fmt.Sprintf("%s && %s || %s; %s; %s", build, run, compileFailedMessage, cleanup, holdOpen), nil
}

func cleanupCommand(d toolchain.Descriptor, vars toolchain.Vars) string {
	files := make([]string, 0, len(d.Cleanup))
	for _, a := range d.Cleanup {
		switch a {
		case toolchain.ArtifactSource:
			files = append(files, vars.Source)
		case toolchain.ArtifactExecutable:
			if vars.Executable != "" {
				files = append(files, vars.Executable)
			}
		}
	}
	return "rm -f " + strings.Join(files, " ")
}
