package diagnose

import (
	"fmt"
	"os"

	"github.com/nickproject/tasktint/internal/color"
	"github.com/nickproject/tasktint/internal/terminal"
)

// RunColorDiagnose 对当前终端运行色彩能力诊断
func RunColorDiagnose() *Report {
	return runColorDiagnose(terminal.Detect())
}

// runColorDiagnose 对指定适配器运行诊断, 便于测试注入
func runColorDiagnose(term *terminal.Adapter) *Report {
	report := NewReport("colors")
	report.Terminal = collectTerminalInfo(term)

	// 1. 终端环境变量
	checkEnvironment(report)

	// 2. 色彩能力
	if !checkColorSupport(report, term) {
		report.SetSummary("终端没有色彩能力, 将以单色渲染")
		return report
	}

	// 3. 引擎初始化与默认规则
	checkEngine(report, term)

	generateSummary(report)
	return report
}

// collectTerminalInfo 收集终端环境信息
func collectTerminalInfo(term *terminal.Adapter) *TerminalInfo {
	return &TerminalInfo{
		Term:      os.Getenv("TERM"),
		ColorTerm: os.Getenv("COLORTERM"),
		Profile:   term.ProfileName(),
		MaxPairs:  term.MaxPairs(),
		HasColors: term.HasColors(),
	}
}

// checkEnvironment 检查终端环境变量
func checkEnvironment(report *Report) {
	termEnv := os.Getenv("TERM")
	if termEnv == "" {
		report.AddCheck("environment", StatusWarning, "TERM 未设置")
		return
	}
	report.AddCheck("environment", StatusPass, fmt.Sprintf("TERM=%s", termEnv))
}

// checkColorSupport 检查色彩能力
func checkColorSupport(report *Report, term *terminal.Adapter) bool {
	if !term.HasColors() {
		report.AddCheck("color_support", StatusFail,
			fmt.Sprintf("色彩配置为 %s", term.ProfileName()))
		return false
	}
	report.AddCheck("color_support", StatusPass,
		fmt.Sprintf("色彩配置为 %s, 颜色对上限 %d", term.ProfileName(), term.MaxPairs()))
	return true
}

// checkEngine 初始化配色引擎并验证默认规则与去重行为
func checkEngine(report *Report, term *terminal.Adapter) {
	eng := color.New(term)
	defer eng.Teardown()

	if err := eng.Init(); err != nil {
		report.AddCheckWithError("engine_init", StatusFail, "配色引擎初始化失败", err)
		return
	}
	report.AddCheck("engine_init", StatusPass,
		fmt.Sprintf("默认规则已安装 (%d 条, 占用 %d 个颜色对)", eng.Len(), eng.UsedPairs()))

	// 对已有颜色组合重复定义规则不应占用新槽位
	used := eng.UsedPairs()
	if err := eng.AddRule(color.ObjectTask, color.Predicate("~t 'dedup'"),
		color.ColorYellow, color.ColorDefault); err != nil {
		report.AddCheckWithError("pair_dedup", StatusWarning, "去重检查未完成", err)
		return
	}
	if eng.UsedPairs() != used {
		report.AddCheck("pair_dedup", StatusFail,
			fmt.Sprintf("相同颜色组合占用了新槽位 (%d -> %d)", used, eng.UsedPairs()))
		return
	}
	report.AddCheck("pair_dedup", StatusPass, "相同颜色组合复用既有颜色对")
}

// generateSummary 生成摘要
func generateSummary(report *Report) {
	switch report.Status {
	case StatusPass:
		report.SetSummary("终端色彩能力正常")
	case StatusWarning:
		report.SetSummary("终端色彩能力可用, 但存在警告项")
	default:
		report.SetSummary("终端色彩能力检查未通过")
	}
}
