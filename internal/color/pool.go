package color

import (
	"fmt"

	"github.com/nickproject/tasktint/internal/logger"
)

// allocatePair 注册一个颜色对并返回其编号
// askpair <= 0 时从最小编号开始挑选第一个空闲槽位
func (e *Engine) allocatePair(askpair int, fg, bg Color) (int, error) {
	pair := 0

	if askpair <= 0 {
		for pair < len(e.pairsUsed) && e.pairsUsed[pair] {
			pair++
		}
		if pair == len(e.pairsUsed) {
			return 0, ErrPoolExhausted
		}
	} else {
		// 指定编号已被占用视同耗尽
		if askpair >= len(e.pairsUsed) || e.pairsUsed[askpair] {
			return 0, ErrPoolExhausted
		}
		pair = askpair
	}

	if err := e.term.Register(pair, fg, bg); err != nil {
		return 0, fmt.Errorf("注册颜色对失败: %w", err)
	}

	e.pairsUsed[pair] = true
	logger.Debug("分配颜色对", "pair", pair, "fg", fg, "bg", bg)
	return pair, nil
}

// findAddPair 查找内容相同的已有颜色对, 没有则分配新的
// 去重保证同一种 (前景,背景) 组合只占用一个槽位
func (e *Engine) findAddPair(fg, bg Color) (int, error) {
	freePair := -1

	for pair := 1; pair < len(e.pairsUsed); pair++ {
		if e.pairsUsed[pair] {
			tfg, tbg, err := e.term.Content(pair)
			if err != nil {
				continue
			}
			if tfg == fg && tbg == bg {
				return pair, nil
			}
		} else if freePair == -1 {
			freePair = pair
		}
	}

	return e.allocatePair(freePair, fg, bg)
}

// UsedPairs 已占用的颜色对数量 (含保留的 0 号)
func (e *Engine) UsedPairs() int {
	n := 0
	for _, used := range e.pairsUsed {
		if used {
			n++
		}
	}
	return n
}
