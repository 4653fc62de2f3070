package diagnose

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nickproject/tasktint/internal/terminal"
)

func findCheck(t *testing.T, report *Report, name string) CheckResult {
	t.Helper()
	for _, check := range report.Checks {
		if check.Name == name {
			return check
		}
	}
	t.Fatalf("检查项 %s 不存在", name)
	return CheckResult{}
}

func TestRunColorDiagnoseMonochrome(t *testing.T) {
	report := runColorDiagnose(terminal.Monochrome())

	require.Equal(t, "colors", report.Type)
	require.Equal(t, StatusFail, report.Status)
	require.NotNil(t, report.Terminal)
	require.False(t, report.Terminal.HasColors)
	require.Equal(t, 1, report.Terminal.MaxPairs)

	check := findCheck(t, report, "color_support")
	require.Equal(t, StatusFail, check.Status)

	// 没有色彩能力时不做引擎检查
	for _, c := range report.Checks {
		require.NotEqual(t, "engine_init", c.Name)
	}
	require.Contains(t, report.Summary, "单色")
}

func TestRunColorDiagnoseANSI256(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")

	report := runColorDiagnose(terminal.ANSI256())

	require.Contains(t, []CheckStatus{StatusPass, StatusWarning}, report.Status)
	require.Equal(t, StatusPass, findCheck(t, report, "environment").Status)
	require.Equal(t, StatusPass, findCheck(t, report, "color_support").Status)
	require.Equal(t, StatusPass, findCheck(t, report, "engine_init").Status)
	require.Equal(t, StatusPass, findCheck(t, report, "pair_dedup").Status)
}

func TestRunColorDiagnoseMissingTerm(t *testing.T) {
	t.Setenv("TERM", "")

	report := runColorDiagnose(terminal.ANSI256())
	require.Equal(t, StatusWarning, findCheck(t, report, "environment").Status)
	require.Equal(t, StatusWarning, report.Status)
}
