package protocol

import (
	"github.com/palemoky/blackjack-table/internal/game/card"
)

// CardToInfo 将一张牌转换为线上表示
func CardToInfo(c card.Card) CardInfo {
	return CardInfo{
		Value: c.Rank.String(),
		Suit:  c.Suit.String(),
	}
}

// CardsToInfos 将一手牌转换为线上表示
func CardsToInfos(cards []card.Card) []CardInfo {
	infos := make([]CardInfo, len(cards))
	for i, c := range cards {
		infos[i] = CardToInfo(c)
	}
	return infos
}

// HiddenCard 返回庄家暗牌的占位表示
func HiddenCard() CardInfo {
	return CardInfo{Hidden: true}
}

// MaskedDealerCards 返回发牌阶段的庄家牌面：亮出第一张，其余用暗牌占位
func MaskedDealerCards(cards []card.Card) []CardInfo {
	if len(cards) == 0 {
		return []CardInfo{}
	}
	masked := make([]CardInfo, len(cards))
	masked[0] = CardToInfo(cards[0])
	for i := 1; i < len(cards); i++ {
		masked[i] = HiddenCard()
	}
	return masked
}
