package buffer

import (
	"testing"

	"github.com/Parikshit8902/Mint-Pad/internal/lang"
	"github.com/stretchr/testify/require"
)

func TestLoadIsVerbatimAndClean(t *testing.T) {
	t.Parallel()

	b := New()
	for _, text := range []string{"", "a", "a\n", "a\r\nb\r\n", "\n\n"} {
		b.Load(text)
		require.Equal(t, text, b.Text())
		require.False(t, b.Modified())
	}
}

func TestEditsMarkModified(t *testing.T) {
	t.Parallel()

	b := New()
	b.Append("int main() {")
	require.True(t, b.Modified())
	b.Append("}")
	require.Equal(t, "int main() {\n}\n", b.Text())

	b.SetModified(false)
	require.NoError(t, b.InsertLine(2, "  return 0;"))
	require.True(t, b.Modified())
	require.Equal(t, "int main() {\n  return 0;\n}\n", b.Text())
	require.Equal(t, Position{Line: 2, Col: 12}, b.Cursor())

	require.NoError(t, b.ReplaceLine(2, "  return 1;"))
	require.NoError(t, b.DeleteLine(1))
	require.Equal(t, "  return 1;\n}\n", b.Text())
}

func TestAppendToUnterminatedText(t *testing.T) {
	t.Parallel()

	b := New()
	b.Load("x = 1")
	b.Append("print(x)")
	require.Equal(t, "x = 1\nprint(x)\n", b.Text())
}

func TestLineEditsRejectOutOfRange(t *testing.T) {
	t.Parallel()

	b := New()
	require.Error(t, b.ReplaceLine(2, "x"))
	require.Error(t, b.DeleteLine(0))
	require.Error(t, b.InsertLine(3, "x"))
	require.False(t, b.Modified())

	require.NoError(t, b.DeleteLine(1))
	require.Equal(t, 1, b.LineCount())
}

func TestHighlightDoesNotTouchModified(t *testing.T) {
	t.Parallel()

	b := New()
	b.Load("print(1)\n")
	b.SetHighlight(lang.Python)
	require.Equal(t, lang.Python, b.Highlight())
	require.False(t, b.Modified())
	require.Equal(t, "print(1)\n", b.Text())
}

func TestSetCursorClamps(t *testing.T) {
	t.Parallel()

	b := New()
	b.Load("ab\ncdef")
	b.SetCursor(Position{Line: 9, Col: 9})
	require.Equal(t, Position{Line: 2, Col: 5}, b.Cursor())
	b.SetCursor(Position{Line: 0, Col: 0})
	require.Equal(t, Position{Line: 1, Col: 1}, b.Cursor())
}
