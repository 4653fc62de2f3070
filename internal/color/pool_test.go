package color

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindAddPair(t *testing.T) {
	t.Parallel()

	t.Run("same content returns same pair", func(t *testing.T) {
		t.Parallel()
		e, _ := newBareEngine(16)

		p1, err := e.findAddPair(ColorRed, ColorBlack)
		require.NoError(t, err)
		p2, err := e.findAddPair(ColorRed, ColorBlack)
		require.NoError(t, err)
		require.Equal(t, p1, p2)
		require.Equal(t, 2, e.UsedPairs()) // 0 号 + 1 个新槽位
	})

	t.Run("distinct content gets distinct pairs", func(t *testing.T) {
		t.Parallel()
		e, _ := newBareEngine(16)

		p1, err := e.findAddPair(ColorRed, ColorBlack)
		require.NoError(t, err)
		p2, err := e.findAddPair(ColorGreen, ColorBlack)
		require.NoError(t, err)
		require.NotEqual(t, p1, p2)
	})

	t.Run("never hands out reserved pair 0", func(t *testing.T) {
		t.Parallel()
		e, _ := newBareEngine(16)

		p, err := e.findAddPair(ColorDefault, ColorDefault)
		require.NoError(t, err)
		require.Equal(t, 1, p)
	})

	t.Run("exhaustion keeps earlier pairs intact", func(t *testing.T) {
		t.Parallel()
		e, ft := newBareEngine(4) // 0 号保留, 可用 1..3

		var pairs []int
		for i, combo := range [][2]Color{
			{ColorRed, ColorBlack},
			{ColorGreen, ColorBlack},
			{ColorBlue, ColorBlack},
		} {
			p, err := e.findAddPair(combo[0], combo[1])
			require.NoError(t, err, "combo %d", i)
			pairs = append(pairs, p)
		}

		_, err := e.findAddPair(ColorYellow, ColorBlack)
		require.ErrorIs(t, err, ErrPoolExhausted)

		// 先前分配的槽位仍可查询
		for i, p := range pairs {
			fg, bg, err := ft.Content(p)
			require.NoError(t, err)
			require.Equal(t, []Color{ColorRed, ColorGreen, ColorBlue}[i], fg)
			require.Equal(t, ColorBlack, bg)
		}
	})
}

func TestAllocatePair(t *testing.T) {
	t.Parallel()

	t.Run("requested pair conflicts", func(t *testing.T) {
		t.Parallel()
		e, _ := newBareEngine(8)

		p, err := e.allocatePair(2, ColorRed, ColorBlack)
		require.NoError(t, err)
		require.Equal(t, 2, p)

		_, err = e.allocatePair(2, ColorGreen, ColorBlack)
		require.ErrorIs(t, err, ErrPoolExhausted)
	})

	t.Run("requested pair out of range", func(t *testing.T) {
		t.Parallel()
		e, _ := newBareEngine(8)

		_, err := e.allocatePair(8, ColorRed, ColorBlack)
		require.ErrorIs(t, err, ErrPoolExhausted)
	})

	t.Run("register failure does not mark slot used", func(t *testing.T) {
		t.Parallel()
		e, ft := newBareEngine(8)
		ft.failPair = 1

		_, err := e.allocatePair(-1, ColorRed, ColorBlack)
		require.Error(t, err)
		require.Equal(t, 1, e.UsedPairs())
	})
}
