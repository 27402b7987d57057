package table

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/weedbox/timebank"

	"github.com/palemoky/blackjack-table/internal/game/card"
	"github.com/palemoky/blackjack-table/internal/network/protocol"
)

const (
	// NumSeats 桌面座位数，座位号 1..7
	NumSeats = 7
	// DealerStandScore 庄家停牌点数
	DealerStandScore = 17
)

// phase 牌桌的轮次阶段
// 庄家手牌只在 phaseBetting → phasePlaying 的切换点发一次，
// 轮内后续 newGame 不再触碰庄家
type phase int

const (
	phaseBetting phase = iota // 可下注、可开新一轮
	phasePlaying              // 一轮进行中，后来者可加入本轮
	phaseDealer               // 庄家行动与结算中，拒绝所有座位动作
)

// EventSink 牌桌向外发消息的出口，由网络层实现
// 座位房间在服务端退化为"发给座位占有者"（观战方通过广播获得全量信息）
type EventSink interface {
	Direct(playerID string, msg *protocol.Message)
	Broadcast(msg *protocol.Message)
}

// ScoreStore 玩家累计分的持久化接口
// 以玩家 ID 为键，与座位解耦：换座、断线重连后分数仍在
type ScoreStore interface {
	IncrScore(ctx context.Context, playerID, playerName string, delta int) (int, error)
	GetScore(ctx context.Context, playerID string) (int, error)
}

// Config 牌桌配置
// 三个延迟只影响观感，测试中置零让庄家立刻出牌
type Config struct {
	MinBet      int
	MaxBet      int
	RevealDelay time.Duration // 亮牌后到首次摸牌的间隔
	DrawDelay   time.Duration // 庄家每张牌之间的间隔
	SettleDelay time.Duration // 摸牌结束到结算的间隔
}

// DefaultConfig 返回默认牌桌配置
func DefaultConfig() Config {
	return Config{
		MinBet:      1,
		MaxBet:      10000,
		RevealDelay: 600 * time.Millisecond,
		DrawDelay:   800 * time.Millisecond,
		SettleDelay: 500 * time.Millisecond,
	}
}

// Table 一张二十一点牌桌：座位表、庄家和牌靴的唯一持有者
// 所有修改都在 mu 内完成，消息处理器和庄家定时任务由此串行化
type Table struct {
	mu sync.Mutex

	cfg    Config
	sink   EventSink
	scores ScoreStore // 可为 nil（测试或未接 Redis 时）

	shoe   *card.Shoe
	seats  map[int]*Seat
	dealer Dealer
	phase  phase

	tb *timebank.TimeBank
}

// New 创建牌桌
func New(cfg Config, sink EventSink, scores ScoreStore) *Table {
	return &Table{
		cfg:    cfg,
		sink:   sink,
		scores: scores,
		shoe:   card.NewShoe(),
		seats:  make(map[int]*Seat),
		tb:     timebank.NewTimeBank(),
	}
}

// seatOf 返回玩家占有的座位，未入座返回 nil
func (t *Table) seatOf(playerID string) *Seat {
	for _, seat := range t.seats {
		if seat.PlayerID == playerID {
			return seat
		}
	}
	return nil
}

// occupiedSlots 返回已占用的座位号，升序
func (t *Table) occupiedSlots() []int {
	slots := make([]int, 0, len(t.seats))
	for slot := range t.seats {
		slots = append(slots, slot)
	}
	sort.Ints(slots)
	return slots
}

// scoresSnapshotLocked 构造 updateScores 广播的载荷
func (t *Table) scoresSnapshotLocked() protocol.ScoresPayload {
	snapshot := make(protocol.ScoresPayload, len(t.seats))
	for slot, seat := range t.seats {
		snapshot[strconv.Itoa(slot)] = seat.Cumulative
	}
	return snapshot
}

// broadcastDealerLocked 广播亮出的庄家牌面
func (t *Table) broadcastDealerLocked() {
	score := t.dealer.Score
	t.sink.Broadcast(protocol.MustNewMessage(protocol.MsgDealerCards, protocol.DealerCardsPayload{
		Cards:         protocol.CardsToInfos(t.dealer.Hand),
		Score:         &score,
		DeckRemaining: t.shoe.Remaining(),
	}))
}

// broadcastMaskedDealerLocked 广播发牌阶段的庄家牌面：第二张为暗牌，点数隐藏
func (t *Table) broadcastMaskedDealerLocked() {
	t.sink.Broadcast(protocol.MustNewMessage(protocol.MsgDealerCards, protocol.DealerCardsPayload{
		Cards:         protocol.MaskedDealerCards(t.dealer.Hand),
		Score:         nil,
		DeckRemaining: t.shoe.Remaining(),
	}))
}

// sendSeatCardsLocked 将座位的牌面发给占有者
func (t *Table) sendSeatCardsLocked(seat *Seat) {
	t.sink.Direct(seat.PlayerID, protocol.MustNewMessage(protocol.MsgPlayerCards, protocol.PlayerCardsPayload{
		Slot:  seat.Slot,
		Cards: protocol.CardsToInfos(seat.Hand),
		Score: seat.Score,
		Bet:   seat.Bet,
	}))
}

// schedule 延迟执行庄家流程的下一步
// 延迟为零时仍然异步执行，保证不在持锁状态下重入
func (t *Table) schedule(d time.Duration, f func(isCancelled bool)) {
	if d <= 0 {
		go f(false)
		return
	}
	_ = t.tb.NewTask(d, f)
}
