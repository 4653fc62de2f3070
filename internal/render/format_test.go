package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruncateString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "hello", TruncateString("hello", 10))
	require.Equal(t, "hello", TruncateString("hello", 5))
	require.Equal(t, "he...", TruncateString("hello world", 5))
	require.Equal(t, "hel", TruncateString("hello", 3))
	// 多字节字符按字符数截断, 不能切断编码
	require.Equal(t, "整理", TruncateString("整理周报", 2))
	require.Equal(t, "整理周报", TruncateString("整理周报", 4))
}

func TestPadding(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ab   ", PadRight("ab", 5))
	require.Equal(t, "   ab", PadLeft("ab", 5))
	require.Equal(t, "abcdef", PadRight("abcdef", 5))
	require.Equal(t, "整理   ", PadRight("整理", 5))
}

func TestFormatPriority(t *testing.T) {
	t.Parallel()

	require.Equal(t, "H", FormatPriority('H'))
	require.Equal(t, "-", FormatPriority(0))
}

func TestFormatTags(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", FormatTags(""))
	require.Equal(t, "+urgent", FormatTags("urgent"))
	require.Equal(t, "+urgent +weekly", FormatTags("urgent weekly"))
}

func TestFormatPair(t *testing.T) {
	t.Parallel()

	require.Equal(t, "-", FormatPair(0))
	require.Equal(t, "3", FormatPair(3))
}
