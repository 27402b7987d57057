package client

import (
	"time"

	"github.com/palemoky/blackjack-table/internal/network/protocol"
)

// --- 便捷方法 ---

// ClaimSeat 点击空位入座
func (c *Client) ClaimSeat(slot int) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgClaimSeat, protocol.ClaimSeatPayload{
		Slot: slot,
	}))
}

// PlaceBet 下注
func (c *Client) PlaceBet(slot, amount int) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgPlaceBet, protocol.PlaceBetPayload{
		Slot:   slot,
		Amount: amount,
	}))
}

// NewGame 开始新一局
func (c *Client) NewGame(slot int) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgNewGame, protocol.SeatActionPayload{Slot: slot}))
}

// Hit 要牌
func (c *Client) Hit(slot int) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgPlayerHit, protocol.SeatActionPayload{Slot: slot}))
}

// Stand 停牌
func (c *Client) Stand(slot int) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgPlayerStand, protocol.SeatActionPayload{Slot: slot}))
}

// Double 加倍
func (c *Client) Double(slot int) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgPlayerDouble, protocol.SeatActionPayload{Slot: slot}))
}

// Split 查询能否分牌
func (c *Client) Split(slot int) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgPlayerSplit, protocol.SeatActionPayload{Slot: slot}))
}

// GetLeaderboard 获取排行榜
func (c *Client) GetLeaderboard(limit int) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgGetLeaderboard, protocol.GetLeaderboardPayload{
		Limit: limit,
	}))
}

// GetOnlineCount 获取在线人数
func (c *Client) GetOnlineCount() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgGetOnlineCount, nil))
}

// Ping 发送心跳
func (c *Client) Ping() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgPing, protocol.PingPayload{
		Timestamp: time.Now().UnixMilli(),
	}))
}
