package task

import (
	"path/filepath"
	"strings"
)

// Filter 任务文本过滤器
// 模式对 description/project/tags 三个字段做大小写不敏感匹配,
// 含 * 或 ? 时按通配符整体匹配, 否则按子串匹配
type Filter struct {
	includePatterns []string
	excludePatterns []string
}

// NewFilter 创建过滤器
func NewFilter(include, exclude []string) *Filter {
	return &Filter{
		includePatterns: normalizePatterns(include),
		excludePatterns: normalizePatterns(exclude),
	}
}

// normalizePatterns 规范化模式列表
func normalizePatterns(patterns []string) []string {
	result := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimSpace(strings.ToLower(p))
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// Match 判断任务是否应该显示
func (f *Filter) Match(t *Task) bool {
	// 命中排除列表直接过滤
	for _, pattern := range f.excludePatterns {
		if matchTask(pattern, t) {
			return false
		}
	}

	// 没有包含列表时默认显示
	if len(f.includePatterns) == 0 {
		return true
	}

	for _, pattern := range f.includePatterns {
		if matchTask(pattern, t) {
			return true
		}
	}

	return false
}

// matchTask 模式对任意一个文本字段命中即视为匹配
func matchTask(pattern string, t *Task) bool {
	for _, value := range []string{t.description, t.project, t.tags} {
		if matchPattern(pattern, strings.ToLower(value)) {
			return true
		}
	}
	return false
}

// matchPattern 单字段匹配, 模式非法时视为不匹配
func matchPattern(pattern, value string) bool {
	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(value, pattern)
	}
	matched, err := filepath.Match(pattern, value)
	if err != nil {
		return false
	}
	return matched
}

// IsEmpty 过滤器是否为空 (无任何规则)
func (f *Filter) IsEmpty() bool {
	return len(f.includePatterns) == 0 && len(f.excludePatterns) == 0
}
