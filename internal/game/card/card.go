package card

import (
	"fmt"
)

// Suit 定义花色
type Suit int

// Rank 定义点数
type Rank int

const (
	Heart   Suit = iota // 红心
	Diamond             // 方块
	Club                // 梅花
	Spade               // 黑桃
)

// suitCodes 花色的线上编码（与客户端约定一致）
var suitCodes = map[Suit]string{
	Heart:   "H",
	Diamond: "D",
	Club:    "C",
	Spade:   "S",
}

func (s Suit) String() string {
	if code, ok := suitCodes[s]; ok {
		return code
	}
	return "?"
}

const (
	RankA Rank = iota + 1
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	RankT
	RankJ
	RankQ
	RankK
)

// rankCodes 点数的线上编码
var rankCodes = map[Rank]string{
	RankA: "A",
	Rank2: "2",
	Rank3: "3",
	Rank4: "4",
	Rank5: "5",
	Rank6: "6",
	Rank7: "7",
	Rank8: "8",
	Rank9: "9",
	RankT: "T",
	RankJ: "J",
	RankQ: "Q",
	RankK: "K",
}

func (r Rank) String() string {
	if code, ok := rankCodes[r]; ok {
		return code
	}
	return "?"
}

// codeToRank 用于快速查找编码对应的 Rank
var codeToRank = map[string]Rank{}

func init() {
	for r, code := range rankCodes {
		codeToRank[code] = r
	}
}

// RankFromCode 从线上编码解析点数
func RankFromCode(code string) (Rank, error) {
	if rank, ok := codeToRank[code]; ok {
		return rank, nil
	}
	return -1, fmt.Errorf("无法识别的点数: %s", code)
}

// Card 定义一张牌，不可变值类型
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Value 返回这张牌在二十一点中的基础点数，A 按 11 计
func (c Card) Value() int {
	switch {
	case c.Rank == RankA:
		return 11
	case c.Rank >= RankT:
		return 10
	default:
		return int(c.Rank)
	}
}
