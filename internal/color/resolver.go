package color

// Resolve 对一个渲染对象解析应使用的颜色对编号
// Header/Error 取第一条同类规则并立即结束, 不求值断言;
// Task 则对每条同类规则求值断言, 后面的匹配覆盖前面的结果,
// 让更具体的规则盖过靠前安装的默认规则
// 没有任何规则匹配时返回保留的 0 号对; 单色终端恒为 0
func (e *Engine) Resolve(object Object, t Task, selected bool) int {
	if !e.useColors {
		return 0
	}

	pair := 0
	for _, r := range e.rules {
		if r.object != object {
			continue
		}
		switch object {
		case ObjectHeader, ObjectError:
			return r.pair
		case ObjectTask:
			if r.rule == nil || Eval(*r.rule, t, selected) {
				pair = r.pair
			}
		}
	}

	return pair
}
