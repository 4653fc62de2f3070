package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nickproject/tasktint/internal/color"
	"github.com/nickproject/tasktint/internal/task"
	"github.com/nickproject/tasktint/internal/terminal"
)

// 结构样式 (与任务行配色无关的骨架部分)
var (
	secondaryColor = lipgloss.Color("243") // 灰色

	// 表格头样式
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true)

	// 分隔线与脚注样式
	mutedStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)
)

// Renderer 将配色规则与任务行渲染为终端文本
// 只产出字符串, 不持有屏幕, 由调用方决定输出位置
type Renderer struct {
	engine *color.Engine
	term   *terminal.Adapter
	width  int
}

// New 创建渲染器
func New(engine *color.Engine, term *terminal.Adapter, width int) *Renderer {
	if width <= 0 {
		width = 80
	}
	return &Renderer{engine: engine, term: term, width: width}
}

// RuleTable 渲染配色规则总览, 每条规则附色样
func (r *Renderer) RuleTable() string {
	var b strings.Builder

	header := fmt.Sprintf(" %-8s %-14s %4s %-8s %-8s %s",
		"Object", "Rule", "Pair", "FG", "BG", "Sample")
	b.WriteString(tableHeaderStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("-", r.width)))
	b.WriteString("\n")

	for _, info := range r.engine.Rules() {
		ruleText := ""
		if info.Predicate != nil {
			ruleText = *info.Predicate
		}

		fg, bg, err := r.term.Content(info.Pair)
		fgName, bgName := "-", "-"
		if err == nil {
			fgName = fg.Name()
			bgName = bg.Name()
		}

		sample := r.term.Style(info.Pair).Render("示例文本 sample")
		row := fmt.Sprintf(" %-8s %-14s %4s %-8s %-8s %s",
			info.Object.Name(),
			TruncateString(ruleText, 14),
			FormatPair(info.Pair),
			fgName,
			bgName,
			sample)
		b.WriteString(row)
		b.WriteString("\n")
	}

	return b.String()
}

// HeaderLine 按 header 规则渲染标题行
func (r *Renderer) HeaderLine(text string) string {
	pair := r.engine.Resolve(color.ObjectHeader, nil, false)
	return r.term.Style(pair).Render(PadRight(text, r.width))
}

// ErrorLine 按 error 规则渲染错误信息行
func (r *Renderer) ErrorLine(text string) string {
	pair := r.engine.Resolve(color.ObjectError, nil, false)
	return r.term.Style(pair).Render(text)
}

// TaskRow 按 task 规则渲染一行任务
func (r *Renderer) TaskRow(t *task.Task, selected bool) string {
	pair := r.engine.Resolve(color.ObjectTask, t, selected)

	descWidth := r.width - 26
	if descWidth < 10 {
		descWidth = 10
	}
	row := fmt.Sprintf(" %3d %s %-10s %s",
		t.Index(),
		FormatPriority(t.Priority()),
		TruncateString(t.Project(), 10),
		TruncateString(t.Description(), descWidth))

	return r.term.Style(pair).Render(row)
}

// TaskList 渲染一组任务, selected 为选中行下标 (-1 表示无)
func (r *Renderer) TaskList(tasks []*task.Task, selected int) string {
	var b strings.Builder
	for i, t := range tasks {
		b.WriteString(r.TaskRow(t, i == selected))
		b.WriteString("\n")
	}
	return b.String()
}
