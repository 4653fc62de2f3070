package color

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("later task match overrides earlier", func(t *testing.T) {
		t.Parallel()
		e, _ := newBareEngine(16)
		require.NoError(t, e.AddRule(ObjectTask, nil, ColorRed, ColorBlack))
		require.NoError(t, e.AddRule(ObjectTask, Predicate("~S"), ColorGreen, ColorBlack))

		rules := e.Rules()
		pairA, pairB := rules[0].Pair, rules[1].Pair

		require.Equal(t, pairB, e.Resolve(ObjectTask, stubTask{}, true))
		require.Equal(t, pairA, e.Resolve(ObjectTask, stubTask{}, false))
	})

	t.Run("header takes first rule ignoring predicate", func(t *testing.T) {
		t.Parallel()
		e, _ := newBareEngine(16)
		// 即使第一条 header 规则带有断言文本也不求值
		require.NoError(t, e.AddRule(ObjectHeader, Predicate("~S"), ColorBlue, ColorBlack))
		require.NoError(t, e.AddRule(ObjectHeader, nil, ColorGreen, ColorBlack))

		first := e.Rules()[0].Pair
		require.Equal(t, first, e.Resolve(ObjectHeader, nil, false))
		require.Equal(t, first, e.Resolve(ObjectHeader, nil, true))
	})

	t.Run("error takes first rule of its class", func(t *testing.T) {
		t.Parallel()
		e, _ := newBareEngine(16)
		require.NoError(t, e.AddRule(ObjectTask, nil, ColorRed, ColorBlack))
		require.NoError(t, e.AddRule(ObjectError, nil, ColorGreen, ColorBlack))
		require.NoError(t, e.AddRule(ObjectError, nil, ColorBlue, ColorBlack)) // 原位覆盖
		require.NoError(t, e.AddRule(ObjectHeader, nil, ColorCyan, ColorBlack))

		errPair := e.Rules()[1].Pair
		require.Equal(t, errPair, e.Resolve(ObjectError, nil, false))
	})

	t.Run("no matching rule yields default pair", func(t *testing.T) {
		t.Parallel()
		e, _ := newBareEngine(16)
		require.NoError(t, e.AddRule(ObjectTask, Predicate("~S"), ColorGreen, ColorBlack))

		require.Equal(t, 0, e.Resolve(ObjectTask, stubTask{}, false))
		require.Equal(t, 0, e.Resolve(ObjectHeader, nil, false))
	})

	t.Run("default rules resolve as installed", func(t *testing.T) {
		t.Parallel()
		e := New(newFakeTerm(64))
		require.NoError(t, e.Init())
		rules := e.Rules()

		// 普通任务落到无条件 task 规则
		plain := stubTask{description: "buy milk", project: "home"}
		require.Equal(t, rules[1].Pair, e.Resolve(ObjectTask, plain, false))

		// 选中规则排在最后, 盖过所有字段匹配
		urgent := stubTask{description: "is this done?", project: "task-research", priority: 'M'}
		require.Equal(t, rules[5].Pair, e.Resolve(ObjectTask, urgent, true))

		// 未选中时以最后一条命中的字段规则为准
		require.Equal(t, rules[4].Pair, e.Resolve(ObjectTask, urgent, false))

		require.Equal(t, rules[0].Pair, e.Resolve(ObjectHeader, nil, false))
		require.Equal(t, rules[6].Pair, e.Resolve(ObjectError, nil, false))
	})
}
