package toolchain

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Vars are the variables a command template can reference.
type Vars struct {
	// Source is the ephemeral source file, available as ${src}.
	Source string
	// Executable is the build output, available as ${exe}.
	Executable string
}

func (v Vars) evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"src": cty.StringVal(v.Source),
			"exe": cty.StringVal(v.Executable),
		},
	}
}

// Template is a shell command fragment written as an HCL template, for
// example "g++ ${src} -o ${exe}".
type Template struct {
	expr hcl.Expression
}

// ParseTemplate parses an HCL template string.
func ParseTemplate(src string) (Template, error) {
	expr, diags := hclsyntax.ParseTemplate([]byte(src), "toolchain", hcl.InitialPos)
	if diags.HasErrors() {
		return Template{}, fmt.Errorf("parse template %q: %w", src, diags)
	}
	return Template{expr: expr}, nil
}

// MustParseTemplate is ParseTemplate for static tables.
func MustParseTemplate(src string) Template {
	t, err := ParseTemplate(src)
	if err != nil {
		panic(err)
	}
	return t
}

// FromExpression wraps an already-parsed expression, such as a config file
// attribute.
func FromExpression(expr hcl.Expression) Template {
	return Template{expr: expr}
}

// IsZero reports whether the template is unset.
func (t Template) IsZero() bool { return t.expr == nil }

// Render evaluates the template with vars and returns the command text.
func (t Template) Render(vars Vars) (string, error) {
	if t.expr == nil {
		return "", fmt.Errorf("render: empty template")
	}
	val, diags := t.expr.Value(vars.evalContext())
	if diags.HasErrors() {
		return "", fmt.Errorf("render: %w", diags)
	}
	if val.IsNull() || !val.IsKnown() {
		return "", fmt.Errorf("render: template produced no value")
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return str.AsString(), nil
}
