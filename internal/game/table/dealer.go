package table

import (
	"context"
	"log"
	"time"

	"github.com/thoas/go-funk"

	"github.com/palemoky/blackjack-table/internal/game/card"
	"github.com/palemoky/blackjack-table/internal/network/protocol"
)

// startDealerLocked 进入庄家阶段：亮出暗牌并开始定时摸牌
// phase 先切到 phaseDealer，座位动作从此被拒绝，一轮只会走到这里一次
func (t *Table) startDealerLocked() {
	t.phase = phaseDealer

	t.sink.Broadcast(protocol.MustNewMessage(protocol.MsgGameStatus, protocol.GameStatusPayload{
		Status: "Dealer is playing...",
	}))
	t.broadcastDealerLocked()

	t.schedule(t.cfg.RevealDelay, t.dealerStep)
}

// dealerStep 庄家流程的推进点：不足 17 点继续摸，否则转入结算
func (t *Table) dealerStep(_ bool) {
	t.mu.Lock()
	if t.phase != phaseDealer {
		t.mu.Unlock()
		return
	}

	if t.dealer.Score < DealerStandScore {
		t.mu.Unlock()
		t.schedule(t.cfg.DrawDelay, t.dealerDraw)
		return
	}

	t.mu.Unlock()
	t.schedule(t.cfg.SettleDelay, t.settle)
}

// dealerDraw 庄家摸一张牌并广播，然后回到 dealerStep
func (t *Table) dealerDraw(_ bool) {
	t.mu.Lock()
	if t.phase != phaseDealer {
		t.mu.Unlock()
		return
	}

	t.dealer.Hand = append(t.dealer.Hand, t.shoe.Draw())
	t.dealer.Score = card.Score(t.dealer.Hand)
	t.broadcastDealerLocked()
	t.mu.Unlock()

	t.dealerStep(false)
}

// settle 结算本轮所有参与座位，更新累计分并广播排行快照
func (t *Table) settle(_ bool) {
	t.mu.Lock()
	if t.phase != phaseDealer {
		t.mu.Unlock()
		return
	}

	dealerScore := t.dealer.Score
	type scoreDelta struct {
		playerID   string
		playerName string
		delta      int
	}
	var deltas []scoreDelta

	for _, slot := range t.occupiedSlots() {
		seat := t.seats[slot]
		if !seat.inRound || !funk.Contains([]SeatStatus{StatusStand, StatusBust}, seat.Status) {
			continue
		}

		var result string
		var delta int
		switch {
		case seat.Status == StatusBust:
			// 爆牌的注额在这里一次性扣除，爆牌当时只发结果不动分
			result, delta = protocol.ResultLoss, -seat.Bet
		case dealerScore > card.BustLimit:
			result, delta = protocol.ResultWin, seat.Bet
		case seat.Score > dealerScore:
			result, delta = protocol.ResultWin, seat.Bet
		case seat.Score == dealerScore:
			result, delta = protocol.ResultPush, 0
		default:
			result, delta = protocol.ResultLoss, -seat.Bet
		}

		seat.Cumulative += delta
		seat.Status = SeatStatus(result)
		if delta != 0 {
			deltas = append(deltas, scoreDelta{seat.PlayerID, seat.PlayerName, delta})
		}

		total := seat.Cumulative
		t.sink.Direct(seat.PlayerID, protocol.MustNewMessage(protocol.MsgGameResult, protocol.GameResultPayload{
			Slot:        slot,
			Result:      result,
			DealerScore: &dealerScore,
			TotalScore:  &total,
		}))
	}

	t.sink.Broadcast(protocol.MustNewMessage(protocol.MsgUpdateScores, t.scoresSnapshotLocked()))
	t.sink.Broadcast(protocol.MustNewMessage(protocol.MsgGameStatus, protocol.GameStatusPayload{
		Status: "Round over - place your bets",
	}))

	t.phase = phaseBetting
	t.mu.Unlock()

	// 持久化放在锁外，Redis 故障只丢持久化不丢本局
	if t.scores != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		for _, d := range deltas {
			if _, err := t.scores.IncrScore(ctx, d.playerID, d.playerName, d.delta); err != nil {
				log.Printf("[ERROR] 持久化玩家 %s 累计分失败: %v", d.playerID, err)
			}
		}
	}
}
