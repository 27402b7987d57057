package handlers

import (
	"log"

	"github.com/palemoky/blackjack-table/internal/network/protocol"
	"github.com/palemoky/blackjack-table/internal/network/server/types"
)

// Handler 消息处理器
type Handler struct {
	server types.ServerContext
}

// NewHandler 创建处理器
func NewHandler(s types.ServerContext) *Handler {
	return &Handler{server: s}
}

// Handle 处理消息
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	switch msg.Type {
	// 连接操作
	case protocol.MsgPing:
		h.handlePing(client, msg)

	// 座位操作
	case protocol.MsgClaimSeat:
		h.handleClaimSeat(client, msg)

	// 游戏操作
	case protocol.MsgPlaceBet:
		h.handlePlaceBet(client, msg)
	case protocol.MsgNewGame:
		h.handleNewGame(client, msg)
	case protocol.MsgPlayerHit:
		h.handleHit(client, msg)
	case protocol.MsgPlayerStand:
		h.handleStand(client, msg)
	case protocol.MsgPlayerDouble:
		h.handleDouble(client, msg)
	case protocol.MsgPlayerSplit:
		h.handleSplit(client, msg)

	// 查询操作
	case protocol.MsgGetLeaderboard:
		h.handleGetLeaderboard(client, msg)
	case protocol.MsgGetOnlineCount:
		h.handleGetOnlineCount(client)

	default:
		log.Printf("⚠️  未知消息类型: '%s' (来自玩家: %s, ID: %s)", msg.Type, client.GetName(), client.GetID())
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
	}
}
