package console

import (
	"io"
	"strings"
	"testing"

	"github.com/Parikshit8902/Mint-Pad/internal/buffer"
	"github.com/Parikshit8902/Mint-Pad/internal/document"
	"github.com/Parikshit8902/Mint-Pad/internal/lang"
	"github.com/Parikshit8902/Mint-Pad/internal/status"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func plainTheme() Theme {
	return LightTheme(lipgloss.NewRenderer(io.Discard))
}

func TestRenderChrome(t *testing.T) {
	t.Parallel()

	docs := []document.Info{
		{ID: "a", Path: "/src/main.cpp", Language: lang.Cpp},
		{ID: "b", Path: "/src/tool.py", Language: lang.Python, Modified: true},
	}
	p := status.Project(docs, 1, buffer.Position{Line: 4, Col: 2})

	out := Render(p, plainTheme(), 0)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "tool.py* - Mint_Pad")
	require.Contains(t, lines[1], "main.cpp")
	require.Contains(t, lines[1], "tool.py*")
	require.Contains(t, lines[2], "Line: 4, Col: 2")
	require.Contains(t, lines[2], "Python")
}

func TestRenderWithoutActiveDocument(t *testing.T) {
	t.Parallel()

	out := Render(status.Project(nil, -1, buffer.Position{}), plainTheme(), 80)
	require.Contains(t, out, "Mint_Pad")
	require.NotContains(t, out, "Line:")
}

func TestRenderBufferNumbersLines(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("x\n", 10) + "last"
	out := RenderBuffer(text, plainTheme())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 11)
	require.Equal(t, " 1 │ x", lines[0])
	require.Equal(t, "11 │ last", lines[10])
}
