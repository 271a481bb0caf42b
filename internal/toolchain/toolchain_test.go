package toolchain

import (
	"testing"

	"github.com/Parikshit8902/Mint-Pad/internal/lang"
	"github.com/stretchr/testify/require"
)

func TestDefaultsCoverEveryLanguage(t *testing.T) {
	t.Parallel()

	table := Defaults()
	for _, l := range lang.All() {
		d, ok := table.Lookup(l)
		require.True(t, ok, l)
		require.Equal(t, l, d.Language)
		require.False(t, d.Run.IsZero(), l)
	}
	_, ok := table.Lookup(lang.Language("rust"))
	require.False(t, ok)
}

func TestRenderDefaults(t *testing.T) {
	t.Parallel()

	vars := Vars{Source: "/tmp/temp_run.cpp", Executable: "/tmp/temp_ide_exec"}
	cpp, _ := Defaults().Lookup(lang.Cpp)

	build, err := cpp.Build.Render(vars)
	require.NoError(t, err)
	require.Equal(t, "g++ /tmp/temp_run.cpp -o /tmp/temp_ide_exec", build)

	run, err := cpp.Run.Render(vars)
	require.NoError(t, err)
	require.Equal(t, "/tmp/temp_ide_exec", run)

	py, _ := Defaults().Lookup(lang.Python)
	require.False(t, py.Compiled())
	require.Equal(t, []Artifact{ArtifactSource}, py.Cleanup)
	require.Equal(t, "", py.ExecutablePath("/tmp"))
	require.Equal(t, "/tmp/temp_run.py", py.SourcePath("/tmp"))
}

func TestParseTemplateErrors(t *testing.T) {
	t.Parallel()

	_, err := ParseTemplate("gcc ${src")
	require.Error(t, err)

	tpl := MustParseTemplate("cc ${nope}")
	_, err = tpl.Render(Vars{})
	require.Error(t, err)

	_, err = Template{}.Render(Vars{})
	require.Error(t, err)
}

func TestOverride(t *testing.T) {
	t.Parallel()

	table := Defaults()
	require.NoError(t, table.Override(lang.C, MustParseTemplate("clang -O2 ${src} -o ${exe}"), Template{}))

	c, _ := table.Lookup(lang.C)
	build, err := c.Build.Render(Vars{Source: "a.c", Executable: "a.out"})
	require.NoError(t, err)
	require.Equal(t, "clang -O2 a.c -o a.out", build)

	run, err := c.Run.Render(Vars{Executable: "a.out"})
	require.NoError(t, err)
	require.Equal(t, "a.out", run)

	// The default table is not shared between calls.
	fresh, _ := Defaults().Lookup(lang.C)
	build, _ = fresh.Build.Render(Vars{Source: "a.c", Executable: "a.out"})
	require.Equal(t, "gcc a.c -o a.out", build)

	require.Error(t, table.Override(lang.Language("go"), Template{}, Template{}))
}
