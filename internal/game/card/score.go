package card

// BustLimit 爆牌上限
const BustLimit = 21

// Score 计算一手牌的二十一点点数
// A 先按 11 计，总点数超过 21 时逐张降为 1（软 A 调整）
func Score(hand []Card) int {
	score := 0
	aces := 0

	for _, c := range hand {
		if c.Rank == RankA {
			aces++
		}
		score += c.Value()
	}

	for score > BustLimit && aces > 0 {
		score -= 10
		aces--
	}

	return score
}

// IsBust 判断是否爆牌
func IsBust(hand []Card) bool {
	return Score(hand) > BustLimit
}

// IsBlackjack 判断是否天生二十一点（两张牌凑成 21）
func IsBlackjack(hand []Card) bool {
	return len(hand) == 2 && Score(hand) == BustLimit
}
