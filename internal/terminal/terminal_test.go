package terminal

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/nickproject/tasktint/internal/color"
)

func TestMonochrome(t *testing.T) {
	t.Parallel()

	a := Monochrome()
	require.False(t, a.HasColors())
	require.Equal(t, 1, a.MaxPairs())
	require.Equal(t, "ascii", a.ProfileName())

	// 只有保留的 0 号在范围内
	require.NoError(t, a.Register(0, color.ColorDefault, color.ColorDefault))
	require.Error(t, a.Register(1, color.ColorRed, color.ColorBlack))
}

func TestANSI256(t *testing.T) {
	t.Parallel()

	a := ANSI256()
	require.True(t, a.HasColors())
	require.Equal(t, 256, a.MaxPairs())
	require.Equal(t, "ansi256", a.ProfileName())
}

func TestRegisterAndContent(t *testing.T) {
	t.Parallel()

	a := ANSI256()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, a.Register(3, color.ColorYellow, color.ColorBlack))
		fg, bg, err := a.Content(3)
		require.NoError(t, err)
		require.Equal(t, color.ColorYellow, fg)
		require.Equal(t, color.ColorBlack, bg)
	})

	t.Run("pair 0 is always default", func(t *testing.T) {
		t.Parallel()
		fg, bg, err := a.Content(0)
		require.NoError(t, err)
		require.Equal(t, color.ColorDefault, fg)
		require.Equal(t, color.ColorDefault, bg)
	})

	t.Run("unregistered pair errors", func(t *testing.T) {
		t.Parallel()
		_, _, err := a.Content(99)
		require.Error(t, err)
	})

	t.Run("out of range register errors", func(t *testing.T) {
		t.Parallel()
		require.Error(t, a.Register(-1, color.ColorRed, color.ColorBlack))
		require.Error(t, a.Register(256, color.ColorRed, color.ColorBlack))
	})
}

func TestStyle(t *testing.T) {
	t.Parallel()

	a := ANSI256()
	require.NoError(t, a.Register(5, color.ColorCyan, color.ColorBlack))

	style := a.Style(5)
	require.Equal(t, lipgloss.Color("6"), style.GetForeground())
	require.Equal(t, lipgloss.Color("0"), style.GetBackground())

	// 默认色不设置对应属性
	require.NoError(t, a.Register(6, color.ColorRed, color.ColorDefault))
	require.Equal(t, lipgloss.NoColor{}, a.Style(6).GetBackground())

	// 未注册对返回无配色样式
	require.Equal(t, lipgloss.NoColor{}, a.Style(42).GetForeground())
}
