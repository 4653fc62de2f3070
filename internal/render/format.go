package render

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TruncateString 截断字符串
func TruncateString(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// PadRight 右填充字符串到指定宽度
func PadRight(s string, width int) string {
	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}
	return s + strings.Repeat(" ", width-runeCount)
}

// PadLeft 左填充字符串到指定宽度
func PadLeft(s string, width int) string {
	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}
	return strings.Repeat(" ", width-runeCount) + s
}

// FormatPriority 优先级字符的显示形式
func FormatPriority(p byte) string {
	if p == 0 {
		return "-"
	}
	return string(p)
}

// FormatTags 标签的显示形式
func FormatTags(tags string) string {
	if tags == "" {
		return ""
	}
	parts := strings.Fields(tags)
	for i, p := range parts {
		parts[i] = "+" + p
	}
	return strings.Join(parts, " ")
}

// FormatPair 颜色对编号的显示形式, 0 号显示为默认
func FormatPair(pair int) string {
	if pair == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", pair)
}
