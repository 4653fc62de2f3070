package color

import (
	"fmt"
)

// Terminal 终端色彩能力原语, 由终端适配层实现
// 所有操作都允许失败, 引擎负责降级而不是崩溃
type Terminal interface {
	// HasColors 终端是否具备色彩能力
	HasColors() bool
	// MaxPairs 终端支持的颜色对上限
	MaxPairs() int
	// SetDefaultColors 启用终端默认前景/背景色 (-1)
	SetDefaultColors() error
	// Register 注册一个颜色对
	Register(pair int, fg, bg Color) error
	// Content 查询已注册颜色对的内容
	Content(pair int) (fg, bg Color, err error)
}

// Task 断言求值所需的任务字段访问器
type Task interface {
	Description() string
	Project() string
	Tags() string
	Priority() byte
}

// Engine 配色引擎: 持有颜色对池与规则表
// 进程内只应存在一个实例, 由启动方创建并在调用间传递
// 仅限单线程使用, 引入后台刷新时调用方必须自行串行化
type Engine struct {
	term      Terminal
	useColors bool
	pairsUsed []bool
	rules     []*colorRule
}

// New 创建配色引擎, 需调用 Init 后才能使用
func New(term Terminal) *Engine {
	return &Engine{term: term}
}

// Init 初始化色彩子系统并安装默认规则
// 返回 ErrUnsupportedTerminal 表示色彩子系统不可用,
// ErrNoColorSupport 表示终端只能单色渲染 (引擎仍可调用, 解析恒为 0 号对)
func (e *Engine) Init() error {
	e.useColors = false

	if e.term == nil || e.term.MaxPairs() <= 0 {
		return ErrUnsupportedTerminal
	}

	if err := e.term.SetDefaultColors(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedTerminal, err)
	}

	if !e.term.HasColors() {
		return ErrNoColorSupport
	}

	e.useColors = true
	e.pairsUsed = make([]bool, e.term.MaxPairs())
	// 0 号保留为无显式配色
	e.pairsUsed[0] = true

	return e.installDefaults()
}

// UseColors 色彩是否可用
func (e *Engine) UseColors() bool {
	return e.useColors
}

// Teardown 释放规则与槽位状态
func (e *Engine) Teardown() {
	e.rules = nil
	e.pairsUsed = nil
	e.useColors = false
}

// installDefaults 安装默认规则, 顺序决定解析行为
func (e *Engine) installDefaults() error {
	defaults := []struct {
		object Object
		rule   *string
		fg, bg Color
	}{
		{ObjectHeader, nil, ColorBlue, ColorBlack},
		{ObjectTask, nil, ColorDefault, ColorDefault},
		{ObjectTask, Predicate("~r '[Mm]'"), ColorYellow, ColorDefault},
		{ObjectTask, Predicate("~d '\\?'"), ColorGreen, ColorDefault},
		{ObjectTask, Predicate("~p 'task*'"), ColorRed, ColorDefault},
		{ObjectTask, Predicate("~S"), ColorCyan, ColorBlack},
		{ObjectError, nil, ColorRed, ColorDefault},
	}

	for _, d := range defaults {
		if err := e.AddRule(d.object, d.rule, d.fg, d.bg); err != nil {
			return err
		}
	}
	return nil
}

// Predicate 构造规则断言, nil 表示无条件规则
func Predicate(s string) *string {
	return &s
}
