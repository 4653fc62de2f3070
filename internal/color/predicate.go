package color

import (
	"regexp"
	"strings"
)

// Eval 对单个任务求值断言串
// 断言由零或多个 ~ 引导的子句组成, 从左到右合取、短路:
//
//	~S          任务处于选中状态
//	~p '模式'   project 字段正则匹配
//	~d '模式'   description 字段正则匹配
//	~t '模式'   tags 字段正则匹配
//	~r '模式'   priority 按单字符字符串正则匹配
//
// 子句之外的杂散字符逐个跳过; 空串或子句耗尽视为匹配成功
// 任何格式错误 (引号缺失、字段字母未知) 都判为不匹配, 绝不报错
func Eval(pred string, t Task, selected bool) bool {
	i := 0
	for {
		// 子句耗尽即匹配成功
		if i >= len(pred) {
			return true
		}

		if pred[i] != '~' {
			i++
			continue
		}

		// 选中状态子句
		if strings.HasPrefix(pred[i:], "~S") {
			if !selected {
				return false
			}
			i += 2
			continue
		}

		letter, pattern, adv, ok := scanClause(pred[i:])
		if !ok {
			return false
		}

		var value string
		switch letter {
		case 'p':
			value = t.Project()
		case 'd':
			value = t.Description()
		case 't':
			value = t.Tags()
		case 'r':
			if p := t.Priority(); p != 0 {
				value = string(p)
			}
		default:
			// 无法识别的字段字母, 整条断言判为不匹配
			return false
		}

		if !matchString(value, pattern) {
			return false
		}
		i += adv
	}
}

// scanClause 解析一个 ~x '模式' 形式的子句
// 字段字母与引号之间允许任意数量空白; 缺失闭引号时模式取到串尾
// adv 为本子句消耗的字节数 (后续杂散字符由外层循环跳过)
func scanClause(s string) (letter byte, pattern string, adv int, ok bool) {
	j := 1 // 跳过 '~'
	if j >= len(s) {
		return 0, "", 0, false
	}
	letter = s[j]
	j++

	for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
		j++
	}
	if j >= len(s) || s[j] != '\'' {
		return 0, "", 0, false
	}
	j++

	if end := strings.IndexByte(s[j:], '\''); end >= 0 {
		pattern = s[j : j+end]
	} else {
		pattern = s[j:]
	}
	if pattern == "" {
		return 0, "", 0, false
	}

	return letter, pattern, len(pattern) + 3, true
}

// matchString 正则匹配原语, 模式编译失败视为不匹配
func matchString(value, pattern string) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(value)
}
