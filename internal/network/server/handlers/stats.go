package handlers

import (
	"context"

	"github.com/palemoky/blackjack-table/internal/network/protocol"
	"github.com/palemoky/blackjack-table/internal/network/server/types"
)

// handleGetLeaderboard 获取排行榜
func (h *Handler) handleGetLeaderboard(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.GetLeaderboardPayload](msg)
	if err != nil {
		// 没带参数就取默认条数
		payload = &protocol.GetLeaderboardPayload{}
	}

	entries, err := h.server.GetLeaderboard().GetLeaderboard(context.Background(), payload.Limit)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "Failed to load leaderboard"))
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgLeaderboard, protocol.LeaderboardPayload{
		Entries: entries,
	}))
}

// handleGetOnlineCount 获取在线人数（按需）
func (h *Handler) handleGetOnlineCount(client types.ClientInterface) {
	client.SendMessage(protocol.MustNewMessage(protocol.MsgOnlineCount, protocol.OnlineCountPayload{
		Count: h.server.GetOnlineCount(),
	}))
}
