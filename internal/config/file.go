package config

import (
	"fmt"
	"os"

	"github.com/Parikshit8902/Mint-Pad/internal/lang"
	"github.com/Parikshit8902/Mint-Pad/internal/toolchain"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclConfigFile is the decoding target for config.hcl.
type hclConfigFile struct {
	TempDir         *string              `hcl:"temp_dir,optional"`
	LogLevel        *string              `hcl:"log_level,optional"`
	Journal         *bool                `hcl:"journal,optional"`
	DefaultLanguage *string              `hcl:"default_language,optional"`
	Font            *string              `hcl:"font,optional"`
	DarkTheme       *bool                `hcl:"dark_theme,optional"`
	SaveBeforeRun   *bool                `hcl:"save_before_run,optional"`
	Terminal        *hclTerminalBlock    `hcl:"terminal,block"`
	Toolchains      []*hclToolchainBlock `hcl:"toolchain,block"`
}

type hclTerminalBlock struct {
	Program string   `hcl:"program"`
	Args    []string `hcl:"args,optional"`
}

// hclToolchainBlock keeps commands as raw expressions; they reference ${src}
// and ${exe}, which only exist at run time.
type hclToolchainBlock struct {
	Language string         `hcl:"language,label"`
	Build    hcl.Expression `hcl:"build,optional"`
	Run      hcl.Expression `hcl:"run,optional"`
}

// ApplyFile overlays the settings in an HCL file. A missing file returns an
// error wrapping fs.ErrNotExist.
func (c *Config) ApplyFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}
	var parsed hclConfigFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}
	return c.apply(&parsed)
}

func (c *Config) apply(f *hclConfigFile) error {
	setString(&c.TempDir, f.TempDir)
	setString(&c.LogLevel, f.LogLevel)
	setString(&c.Font, f.Font)
	setBool(&c.Journal, f.Journal)
	setBool(&c.DarkTheme, f.DarkTheme)
	setBool(&c.SaveBeforeRun, f.SaveBeforeRun)

	if f.DefaultLanguage != nil {
		l, err := lang.Parse(*f.DefaultLanguage)
		if err != nil {
			return fmt.Errorf("default_language: %w", err)
		}
		c.DefaultLanguage = l
	}

	if f.Terminal != nil {
		c.Terminal = Terminal{Program: f.Terminal.Program, Args: f.Terminal.Args}
	}

	for _, tc := range f.Toolchains {
		l, err := lang.Parse(tc.Language)
		if err != nil {
			return fmt.Errorf("toolchain %q: %w", tc.Language, err)
		}
		build, err := templateFrom(tc.Build)
		if err != nil {
			return fmt.Errorf("toolchain %q build: %w", tc.Language, err)
		}
		run, err := templateFrom(tc.Run)
		if err != nil {
			return fmt.Errorf("toolchain %q run: %w", tc.Language, err)
		}
		if err := c.Toolchains.Override(l, build, run); err != nil {
			return err
		}
	}
	return nil
}

// templateFrom turns an optional attribute into a template. Absent
// attributes decode as a static null and yield a zero template.
func templateFrom(expr hcl.Expression) (toolchain.Template, error) {
	if expr == nil {
		return toolchain.Template{}, nil
	}
	if v, diags := expr.Value(nil); !diags.HasErrors() && v.IsNull() {
		return toolchain.Template{}, nil
	}
	tpl := toolchain.FromExpression(expr)
	if _, err := tpl.Render(toolchain.Vars{Source: "src", Executable: "exe"}); err != nil {
		return toolchain.Template{}, err
	}
	return tpl, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
