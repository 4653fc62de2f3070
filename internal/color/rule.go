package color

// colorRule 单条配色规则
// rule 为 nil 表示无条件匹配; 文本为引擎持有的副本
type colorRule struct {
	pair   int
	rule   *string
	object Object
}

// AddRule 新增或覆盖一条配色规则
// 已存在相同 (对象, 断言) 的规则时只原位替换其颜色对,
// 否则按插入顺序追加; 槽位耗尽返回 ErrPoolExhausted 且规则表不变
func (e *Engine) AddRule(object Object, rule *string, fg, bg Color) error {
	if !e.useColors {
		return ErrNoColorSupport
	}

	// 查找同键规则并覆盖颜色
	for _, r := range e.rules {
		if r.object != object || !samePredicate(r.rule, rule) {
			continue
		}
		pair, err := e.findAddPair(fg, bg)
		if err != nil {
			return err
		}
		r.pair = pair
		return nil
	}

	// 新建规则
	pair, err := e.findAddPair(fg, bg)
	if err != nil {
		return err
	}
	nr := &colorRule{
		pair:   pair,
		object: object,
	}
	if rule != nil {
		owned := *rule
		nr.rule = &owned
	}
	e.rules = append(e.rules, nr)

	return nil
}

// samePredicate 断言键相等: nil 只等于 nil, 非 nil 按内容比较
func samePredicate(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Len 规则数量
func (e *Engine) Len() int {
	return len(e.rules)
}

// RuleInfo 规则的只读视图
type RuleInfo struct {
	Object    Object
	Predicate *string
	Pair      int
}

// Rules 按求值顺序返回全部规则
func (e *Engine) Rules() []RuleInfo {
	infos := make([]RuleInfo, 0, len(e.rules))
	for _, r := range e.rules {
		infos = append(infos, RuleInfo{
			Object:    r.object,
			Predicate: r.rule,
			Pair:      r.pair,
		})
	}
	return infos
}
