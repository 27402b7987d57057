package card

import (
	"math/rand/v2"
)

const (
	// NumDecks 牌靴中的副数
	NumDecks = 6
	// ShoeSize 满靴张数
	ShoeSize = NumDecks * 52
	// reshuffleThreshold 剩余张数低于该值时整靴重洗
	reshuffleThreshold = 10
)

// Shoe 定义牌靴：从尾部发牌的多副牌牌堆
// 剩余张数不足时丢弃余牌并重建整靴，而不是补牌
type Shoe struct {
	cards []Card
}

// NewShoe 创建并洗好一个满靴
func NewShoe() *Shoe {
	s := &Shoe{}
	s.refill()
	return s
}

// refill 重建 6 副共 312 张牌并均匀洗牌
func (s *Shoe) refill() {
	cards := make([]Card, 0, ShoeSize)
	for i := 0; i < NumDecks; i++ {
		for suit := Heart; suit <= Spade; suit++ {
			for rank := RankA; rank <= RankK; rank++ {
				cards = append(cards, Card{Rank: rank, Suit: suit})
			}
		}
	}
	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	s.cards = cards
}

// Draw 发一张牌
// 剩余张数低于阈值时先重洗整靴，因此永远不会发空
func (s *Shoe) Draw() Card {
	if len(s.cards) < reshuffleThreshold {
		s.refill()
	}
	c := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return c
}

// Remaining 返回未发出的张数，用于界面展示
func (s *Shoe) Remaining() int {
	return len(s.cards)
}
