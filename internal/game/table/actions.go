package table

import (
	"context"
	"fmt"
	"log"

	"github.com/thoas/go-funk"

	"github.com/palemoky/blackjack-table/internal/apperrors"
	"github.com/palemoky/blackjack-table/internal/game/card"
	"github.com/palemoky/blackjack-table/internal/network/protocol"
)

// AutoAssign 连接建立时自动分配第一个空座位
// 升序扫描 1..7，全满返回 ErrTableFull
func (t *Table) AutoAssign(playerID, playerName string) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for slot := 1; slot <= NumSeats; slot++ {
		if _, taken := t.seats[slot]; !taken {
			t.occupyLocked(slot, playerID, playerName)
			return slot, nil
		}
	}
	return 0, apperrors.ErrTableFull
}

// ClaimSeat 点击空位显式入座
// 一个连接同一时刻只能占一个座位
func (t *Table) ClaimSeat(playerID, playerName string, slot int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if slot < 1 || slot > NumSeats {
		return apperrors.ErrInvalidSeat
	}
	if t.seatOf(playerID) != nil {
		return apperrors.ErrAlreadySeated
	}
	if _, taken := t.seats[slot]; taken {
		return apperrors.ErrSeatTaken
	}

	t.occupyLocked(slot, playerID, playerName)
	return nil
}

// occupyLocked 建立座位记录并通知各方
// 累计分从持久化存储恢复，换座或重连不丢分
func (t *Table) occupyLocked(slot int, playerID, playerName string) {
	seat := &Seat{
		Slot:       slot,
		PlayerID:   playerID,
		PlayerName: playerName,
		Status:     StatusWaiting,
	}
	if t.scores != nil {
		score, err := t.scores.GetScore(context.Background(), playerID)
		if err != nil {
			log.Printf("[ERROR] 恢复玩家 %s 累计分失败: %v", playerID, err)
		} else {
			seat.Cumulative = score
		}
	}
	t.seats[slot] = seat

	t.sink.Direct(playerID, protocol.MustNewMessage(protocol.MsgPlayerJoined, protocol.PlayerJoinedPayload{
		PlayerID: playerID,
		Slot:     slot,
	}))
	t.sink.Broadcast(protocol.MustNewMessage(protocol.MsgPlayerConnected, protocol.PlayerConnectedPayload{
		Slot:       slot,
		PlayerID:   playerID,
		PlayerName: playerName,
	}))
}

// Release 断开连接时清空该玩家占有的所有座位
// 只删座位记录，玩家的持久化累计分保留
func (t *Table) Release(playerID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, slot := range t.occupiedSlots() {
		if t.seats[slot].PlayerID != playerID {
			continue
		}
		delete(t.seats, slot)
		t.sink.Broadcast(protocol.MustNewMessage(protocol.MsgPlayerDisconnected, protocol.PlayerDisconnectedPayload{
			Slot: slot,
		}))
	}

	// 离开的座位可能是本轮最后一个未行动的，补一次收尾检查
	t.maybeStartDealerLocked()
}

// seatForLocked 校验座位存在且属于发起请求的玩家
func (t *Table) seatForLocked(playerID string, slot int) (*Seat, error) {
	seat, ok := t.seats[slot]
	if !ok || seat.PlayerID != playerID {
		return nil, apperrors.ErrInvalidSeat
	}
	return seat, nil
}

// PlaceBet 下注，金额须在 [MinBet, MaxBet] 内
// waiting → ready；金额非法时状态不变
// 本轮已被发牌的座位（含已停牌、已爆牌）不得改注，否则 ready 状态会卡住庄家闸门，
// 爆牌座位还能借改注逃掉结算扣分
func (t *Table) PlaceBet(playerID string, slot, amount int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.phase == phaseDealer {
		return apperrors.ErrRoundInProgress
	}
	seat, err := t.seatForLocked(playerID, slot)
	if err != nil {
		return err
	}
	if seat.Status == StatusActive || (t.phase == phasePlaying && seat.inRound) {
		return apperrors.ErrRoundInProgress
	}
	if amount < t.cfg.MinBet || amount > t.cfg.MaxBet {
		return apperrors.ErrInvalidBet
	}

	seat.Bet = amount
	seat.Status = StatusReady

	t.sink.Direct(playerID, protocol.MustNewMessage(protocol.MsgBetPlaced, protocol.BetPlacedPayload{
		Slot:    slot,
		Amount:  amount,
		Message: fmt.Sprintf("bet of %d placed", amount),
	}))
	return nil
}

// NewGame 为座位开始新一局，要求已下注
// 第一个开局的座位同时给庄家发两张牌并打开本轮；轮内后来的座位只给自己发牌，
// 不再碰庄家手牌
func (t *Table) NewGame(playerID string, slot int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.phase == phaseDealer {
		return apperrors.ErrRoundInProgress
	}
	seat, err := t.seatForLocked(playerID, slot)
	if err != nil {
		return err
	}
	if seat.Bet == 0 {
		return apperrors.ErrNoBetPlaced
	}
	if seat.Status == StatusActive || (t.phase == phasePlaying && seat.inRound) {
		return apperrors.ErrRoundInProgress
	}

	if t.phase == phaseBetting {
		// 打开新一轮：清掉上一轮的参与标记，庄家重新发牌
		for _, s := range t.seats {
			s.inRound = false
		}
		t.dealer.Hand = []card.Card{t.shoe.Draw(), t.shoe.Draw()}
		t.dealer.Score = card.Score(t.dealer.Hand)
		t.phase = phasePlaying
	}

	seat.Hand = []card.Card{t.shoe.Draw(), t.shoe.Draw()}
	seat.Score = card.Score(seat.Hand)
	seat.Status = StatusActive
	seat.inRound = true

	t.sendSeatCardsLocked(seat)
	t.broadcastMaskedDealerLocked()
	return nil
}

// Hit 要牌：摸一张并重算点数，超过 21 立即爆牌
func (t *Table) Hit(playerID string, slot int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.phase == phaseDealer {
		return apperrors.ErrRoundInProgress
	}
	seat, err := t.seatForLocked(playerID, slot)
	if err != nil {
		return err
	}
	if seat.Status != StatusActive {
		return apperrors.ErrNoActiveHand
	}

	seat.Hand = append(seat.Hand, t.shoe.Draw())
	seat.Score = card.Score(seat.Hand)
	t.sendSeatCardsLocked(seat)

	if seat.Score > card.BustLimit {
		seat.Status = StatusBust
		t.sink.Direct(playerID, protocol.MustNewMessage(protocol.MsgGameResult, protocol.GameResultPayload{
			Slot:   slot,
			Result: protocol.ResultBust,
		}))
		t.maybeStartDealerLocked()
	}
	return nil
}

// Stand 停牌，不再要牌
func (t *Table) Stand(playerID string, slot int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.phase == phaseDealer {
		return apperrors.ErrRoundInProgress
	}
	seat, err := t.seatForLocked(playerID, slot)
	if err != nil {
		return err
	}
	if seat.Status != StatusActive {
		return apperrors.ErrNoActiveHand
	}

	seat.Status = StatusStand
	t.sink.Direct(playerID, protocol.MustNewMessage(protocol.MsgStandAck, protocol.StandAckPayload{
		Slot: slot,
	}))

	t.maybeStartDealerLocked()
	return nil
}

// Double 加倍：注额翻倍，只摸一张，随后强制停牌
// 顺序是固定契约：摸牌、重算、强停——即使这张牌爆了也照样停牌，由结算按爆牌处理
func (t *Table) Double(playerID string, slot int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.phase == phaseDealer {
		return apperrors.ErrRoundInProgress
	}
	seat, err := t.seatForLocked(playerID, slot)
	if err != nil {
		return err
	}
	if seat.Status != StatusActive {
		return apperrors.ErrNoActiveHand
	}

	seat.Bet *= 2
	seat.Hand = append(seat.Hand, t.shoe.Draw())
	seat.Score = card.Score(seat.Hand)
	t.sendSeatCardsLocked(seat)

	seat.Status = StatusStand

	t.maybeStartDealerLocked()
	return nil
}

// Split 分牌查询：只校验不执行
// 两张同点数时提示允许分牌，实际分牌逻辑不在本桌规则内
func (t *Table) Split(playerID string, slot int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.phase == phaseDealer {
		return apperrors.ErrRoundInProgress
	}
	seat, err := t.seatForLocked(playerID, slot)
	if err != nil {
		return err
	}
	if len(seat.Hand) != 2 || seat.Hand[0].Rank != seat.Hand[1].Rank {
		return apperrors.ErrInvalidSplit
	}

	t.sink.Direct(playerID, protocol.MustNewMessage(protocol.MsgSplitAllowed, protocol.SplitAllowedPayload{
		Slot: slot,
	}))
	return nil
}

// maybeStartDealerLocked 检查"所有人已行动完毕"的闸门
// 任何座位还处于 active（行动中）或 ready（已下注待开局）都不触发；
// waiting 的旁观座位和上一轮的结算状态不挡庄家
func (t *Table) maybeStartDealerLocked() {
	if t.phase != phasePlaying {
		return
	}

	participants := 0
	for _, seat := range t.seats {
		if funk.Contains([]SeatStatus{StatusActive, StatusReady}, seat.Status) {
			return
		}
		if seat.inRound {
			participants++
		}
	}
	if participants == 0 {
		// 本轮所有参与者都已离座，直接关轮
		t.phase = phaseBetting
		return
	}

	t.startDealerLocked()
}
