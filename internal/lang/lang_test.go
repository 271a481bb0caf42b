package lang

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, C, FromPath("/src/main.c"))
	require.Equal(t, Cpp, FromPath("legacy.C"))
	require.Equal(t, Cpp, FromPath("script.PY"))
	require.Equal(t, Python, FromPath("tool.py"))
	require.Equal(t, Cpp, FromPath("main.cpp"))
	require.Equal(t, Cpp, FromPath("notes.txt"))
	require.Equal(t, Cpp, FromPath("Makefile"))
}

func TestParse(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]Language{
		"cpp":    Cpp,
		"C++":    Cpp,
		" c ":    C,
		"Python": Python,
		"python": Python,
	} {
		got, err := Parse(raw)
		require.NoError(t, err, raw)
		require.Equal(t, want, got)
	}

	_, err := Parse("rust")
	require.Error(t, err)
}

func TestExtensionsAndSuggestions(t *testing.T) {
	t.Parallel()

	require.Equal(t, ".cpp", Cpp.Extension())
	require.Equal(t, ".c", C.Extension())
	require.Equal(t, ".py", Python.Extension())
	require.Equal(t, "untitled.py", Python.SuggestedFilename())

	unknown := Language("go")
	require.False(t, unknown.Valid())
	require.Equal(t, "", unknown.Extension())
	require.Equal(t, "go", unknown.DisplayName())
}
