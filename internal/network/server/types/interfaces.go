package types

import (
	"context"

	"github.com/palemoky/blackjack-table/internal/game/table"
	"github.com/palemoky/blackjack-table/internal/network/protocol"
)

// ClientInterface 客户端连接的抽象，便于测试时替换
type ClientInterface interface {
	GetID() string
	GetName() string
	SendMessage(msg *protocol.Message)
	Close()
}

// LeaderboardProvider 排行榜查询接口
type LeaderboardProvider interface {
	GetLeaderboard(ctx context.Context, limit int) ([]protocol.LeaderboardEntry, error)
}

// ServerContext 消息处理器能看到的服务器能力
type ServerContext interface {
	GetTable() *table.Table
	GetLeaderboard() LeaderboardProvider
	GetOnlineCount() int
}
