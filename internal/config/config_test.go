package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nickproject/tasktint/internal/color"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	require.Equal(t, "task", cfg.Taskwarrior.Bin)
	require.Equal(t, 80, cfg.Display.Width)
	require.Equal(t, "warn", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Output.Format)

	require.Len(t, cfg.Colors, 7)
	require.Equal(t, "header", cfg.Colors[0].Object)
	require.Equal(t, "error", cfg.Colors[6].Object)

	// 所有默认规则都要能被引擎解析
	for _, rule := range cfg.Colors {
		require.NotEqual(t, color.ObjectNone, color.ParseObject(rule.Object), rule.Object)
		_, err := color.ParseColor(rule.FG)
		require.NoError(t, err, rule.FG)
		_, err = color.ParseColor(rule.BG)
		require.NoError(t, err, rule.BG)
	}
}
