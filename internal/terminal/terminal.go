package terminal

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/nickproject/tasktint/internal/color"
)

// pairContent 已注册颜色对的内容
type pairContent struct {
	fg, bg color.Color
}

// Adapter 基于 termenv 的终端色彩能力适配器
// 维护颜色对内容表, 并为每个颜色对构建渲染样式
type Adapter struct {
	profile  termenv.Profile
	maxPairs int
	pairs    map[int]pairContent
	styles   map[int]lipgloss.Style
}

// Detect 探测当前终端的色彩能力
func Detect() *Adapter {
	return newAdapter(termenv.ColorProfile())
}

// Monochrome 无色彩适配器, 用于单色终端与测试
func Monochrome() *Adapter {
	return newAdapter(termenv.Ascii)
}

// ANSI256 固定 256 色适配器, 供非交互场景与测试使用
func ANSI256() *Adapter {
	return newAdapter(termenv.ANSI256)
}

func newAdapter(p termenv.Profile) *Adapter {
	a := &Adapter{
		profile: p,
		pairs:   make(map[int]pairContent),
		styles:  make(map[int]lipgloss.Style),
	}

	// termenv 不直接汇报颜色对上限, 按色彩配置推导
	switch p {
	case termenv.TrueColor, termenv.ANSI256:
		a.maxPairs = 256
	case termenv.ANSI:
		a.maxPairs = 64
	default:
		// 仅保留 0 号默认对
		a.maxPairs = 1
	}

	return a
}

// HasColors 终端是否具备色彩能力
func (a *Adapter) HasColors() bool {
	return a.profile != termenv.Ascii
}

// MaxPairs 颜色对上限
func (a *Adapter) MaxPairs() int {
	return a.maxPairs
}

// SetDefaultColors 启用终端默认前景/背景色
// termenv 渲染时天然支持缺省色, 这里无需额外动作
func (a *Adapter) SetDefaultColors() error {
	return nil
}

// Register 注册一个颜色对并构建其渲染样式
func (a *Adapter) Register(pair int, fg, bg color.Color) error {
	if pair < 0 || pair >= a.maxPairs {
		return fmt.Errorf("颜色对编号越界: %d (上限 %d)", pair, a.maxPairs)
	}

	a.pairs[pair] = pairContent{fg: fg, bg: bg}

	style := lipgloss.NewStyle()
	if fg >= 0 {
		style = style.Foreground(lipgloss.Color(strconv.Itoa(int(fg))))
	}
	if bg >= 0 {
		style = style.Background(lipgloss.Color(strconv.Itoa(int(bg))))
	}
	a.styles[pair] = style

	return nil
}

// Content 查询颜色对内容, 0 号恒为默认色
func (a *Adapter) Content(pair int) (color.Color, color.Color, error) {
	if pair == 0 {
		return color.ColorDefault, color.ColorDefault, nil
	}
	c, ok := a.pairs[pair]
	if !ok {
		return 0, 0, fmt.Errorf("颜色对未注册: %d", pair)
	}
	return c.fg, c.bg, nil
}

// Style 返回颜色对的渲染样式, 0 号与未注册对返回无配色样式
func (a *Adapter) Style(pair int) lipgloss.Style {
	if s, ok := a.styles[pair]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// ProfileName 色彩配置名称, 供诊断输出
func (a *Adapter) ProfileName() string {
	switch a.profile {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	default:
		return "ascii"
	}
}
