package color

import (
	"errors"
	"fmt"
)

// Color 终端颜色值, 使用 256 色空间的色号, -1 表示终端默认色
type Color int16

// 基础 ANSI 颜色
const (
	ColorDefault Color = -1
	ColorBlack   Color = 0
	ColorRed     Color = 1
	ColorGreen   Color = 2
	ColorYellow  Color = 3
	ColorBlue    Color = 4
	ColorMagenta Color = 5
	ColorCyan    Color = 6
	ColorWhite   Color = 7
)

// Object 配色对象类别: 同一条规则只作用于一类渲染对象
type Object int

const (
	ObjectHeader Object = iota
	ObjectTask
	ObjectError
	ObjectNone Object = -1
)

var (
	// ErrPoolExhausted 颜色对槽位已经用尽
	ErrPoolExhausted = errors.New("没有空闲的颜色对")
	// ErrUnsupportedTerminal 色彩子系统不可用
	ErrUnsupportedTerminal = errors.New("终端不支持色彩子系统")
	// ErrNoColorSupport 终端没有色彩能力, 只能单色渲染
	ErrNoColorSupport = errors.New("终端没有色彩能力")
	// ErrUnknownColor 无法识别的颜色名
	ErrUnknownColor = errors.New("无法识别的颜色名")
)

// 颜色名映射表
var colorNames = []struct {
	color Color
	name  string
}{
	{ColorBlack, "black"},
	{ColorRed, "red"},
	{ColorGreen, "green"},
	{ColorYellow, "yellow"},
	{ColorBlue, "blue"},
	{ColorMagenta, "magenta"},
	{ColorCyan, "cyan"},
	{ColorWhite, "white"},
}

// ParseColor 从字符串解析颜色
// 依次尝试: 纯数字、colorNNN 形式、颜色名
func ParseColor(name string) (Color, error) {
	var n int

	// 纯数字 (含 -1 表示默认色)
	if _, err := fmt.Sscanf(name, "%d", &n); err == nil {
		return Color(n), nil
	}

	// colorNNN 形式
	if _, err := fmt.Sscanf(name, "color%d", &n); err == nil {
		return Color(n), nil
	}

	// 颜色名
	for _, entry := range colorNames {
		if entry.name == name {
			return entry.color, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// Name 返回颜色的可读名称, 与 ParseColor 互逆
func (c Color) Name() string {
	if c < 0 {
		return "default"
	}
	for _, entry := range colorNames {
		if entry.color == c {
			return entry.name
		}
	}
	return fmt.Sprintf("color%d", int(c))
}

// 对象类别映射表
var objectNames = []struct {
	object Object
	name   string
}{
	{ObjectHeader, "header"},
	{ObjectTask, "task"},
	{ObjectError, "error"},
}

// ParseObject 从字符串解析配色对象类别, 未识别返回 ObjectNone
func ParseObject(name string) Object {
	for _, entry := range objectNames {
		if entry.name == name {
			return entry.object
		}
	}
	return ObjectNone
}

// Name 返回对象类别名称
func (o Object) Name() string {
	for _, entry := range objectNames {
		if entry.object == o {
			return entry.name
		}
	}
	return "none"
}
