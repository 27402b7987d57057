package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShoe(t *testing.T) {
	t.Parallel()

	s := NewShoe()
	assert.Equal(t, ShoeSize, s.Remaining())

	// 满靴应当包含每张牌恰好 6 份
	counts := make(map[Card]int)
	for _, c := range s.cards {
		counts[c]++
	}
	require.Len(t, counts, 52)
	for c, n := range counts {
		assert.Equal(t, NumDecks, n, "card %s", c)
	}
}

func TestShoe_DrawDecrements(t *testing.T) {
	t.Parallel()

	s := NewShoe()
	s.Draw()
	assert.Equal(t, ShoeSize-1, s.Remaining())
}

func TestShoe_ReshuffleAtThreshold(t *testing.T) {
	t.Parallel()

	s := NewShoe()

	// 前 303 次发牌不会触发重洗，剩余张数始终不低于 9
	for i := 0; i < 303; i++ {
		s.Draw()
	}
	require.Equal(t, 9, s.Remaining())

	// 第 304 次发牌时剩余 9 张（低于阈值 10），先重建满靴再发牌
	s.Draw()
	assert.Equal(t, ShoeSize-1, s.Remaining())
}

func TestRankFromCode(t *testing.T) {
	t.Parallel()

	r, err := RankFromCode("A")
	require.NoError(t, err)
	assert.Equal(t, RankA, r)

	_, err = RankFromCode("X")
	assert.Error(t, err)
}
