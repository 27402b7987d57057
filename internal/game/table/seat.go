package table

import (
	"github.com/palemoky/blackjack-table/internal/game/card"
)

// SeatStatus 座位在一轮中的状态
type SeatStatus string

const (
	StatusWaiting SeatStatus = "waiting" // 已入座未下注
	StatusReady   SeatStatus = "ready"   // 已下注，等待开局
	StatusActive  SeatStatus = "active"  // 本轮行动中
	StatusStand   SeatStatus = "stand"   // 停牌，等待庄家
	StatusBust    SeatStatus = "bust"    // 爆牌，等待结算
	StatusWin     SeatStatus = "win"     // 结算：赢
	StatusLoss    SeatStatus = "loss"    // 结算：输
	StatusPush    SeatStatus = "push"    // 结算：平局退注
)

// Seat 代表一个被占用的座位
// 空座位不建记录，以座位号是否存在于 Table.seats 表示
type Seat struct {
	Slot       int
	PlayerID   string
	PlayerName string
	Hand       []card.Card
	Score      int // 由 Hand 派生，每次加牌后重算
	Bet        int
	Status     SeatStatus
	Cumulative int // 累计分，按玩家持久化（见 ScoreStore）

	inRound bool // 本轮是否已被发牌
}

// Dealer 庄家，整桌唯一
type Dealer struct {
	Hand  []card.Card
	Score int
}
