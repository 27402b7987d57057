package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	// 连接操作
	MsgPing MessageType = "ping" // 心跳 ping

	// 座位操作
	MsgClaimSeat MessageType = "claimSeat" // 点击空位入座

	// 游戏操作
	MsgPlaceBet     MessageType = "placeBet"     // 下注
	MsgNewGame      MessageType = "newGame"      // 开始新一局
	MsgPlayerHit    MessageType = "playerHit"    // 要牌
	MsgPlayerStand  MessageType = "playerStand"  // 停牌
	MsgPlayerDouble MessageType = "playerDouble" // 加倍
	MsgPlayerSplit  MessageType = "playerSplit"  // 分牌查询

	// 查询操作
	MsgGetLeaderboard MessageType = "getLeaderboard" // 获取排行榜
	MsgGetOnlineCount MessageType = "getOnlineCount" // 获取在线人数
)

// 服务端 → 客户端 消息类型
const (
	// 连接相关
	MsgPong               MessageType = "pong"               // 心跳 pong
	MsgPlayerJoined       MessageType = "playerJoined"       // 自己入座成功（单发）
	MsgPlayerConnected    MessageType = "playerConnected"    // 有玩家入座（广播）
	MsgPlayerDisconnected MessageType = "playerDisconnected" // 有玩家离座（广播）

	// 游戏流程
	MsgDealerCards  MessageType = "dealerCards"  // 庄家牌面（广播，发牌阶段隐藏第二张）
	MsgPlayerCards  MessageType = "playerCards"  // 玩家牌面（单发）
	MsgBetPlaced    MessageType = "betPlaced"    // 下注成功（单发）
	MsgStandAck     MessageType = "playerStand"  // 停牌确认（单发）
	MsgGameResult   MessageType = "gameResult"   // 本局结果（单发/座位房间）
	MsgUpdateScores MessageType = "updateScores" // 所有座位累计分快照（广播）
	MsgGameStatus   MessageType = "gameStatus"   // 牌桌状态提示（广播）
	MsgSplitAllowed MessageType = "splitAllowed" // 允许分牌提示（单发）

	// 查询结果
	MsgLeaderboard MessageType = "leaderboard" // 排行榜
	MsgOnlineCount MessageType = "onlineCount" // 在线人数

	// 错误
	MsgError MessageType = "error" // 错误消息
)

// 结算结果
const (
	ResultWin  = "win"
	ResultLoss = "loss"
	ResultPush = "push"
	ResultBust = "bust"
)

// CardInfo 牌的线上表示
// Hidden 为 true 时表示庄家的暗牌，此时不带点数和花色
type CardInfo struct {
	Value  string `json:"value,omitempty"`
	Suit   string `json:"suit,omitempty"`
	Hidden bool   `json:"hidden,omitempty"`
}

// --- 客户端请求 Payloads ---

// ClaimSeatPayload 入座请求
type ClaimSeatPayload struct {
	Slot int `json:"slot"`
}

// PlaceBetPayload 下注请求
type PlaceBetPayload struct {
	Slot   int `json:"slot"`
	Amount int `json:"amount"`
}

// SeatActionPayload 针对某个座位的动作请求（newGame/hit/stand/double/split）
type SeatActionPayload struct {
	Slot int `json:"slot"`
}

// PingPayload 心跳请求
type PingPayload struct {
	Timestamp int64 `json:"timestamp"` // 客户端时间戳（毫秒）
}

// GetLeaderboardPayload 排行榜请求
type GetLeaderboardPayload struct {
	Limit int `json:"limit"` // 返回条数，0 表示默认
}

// --- 服务端响应 Payloads ---

// PongPayload 心跳响应
type PongPayload struct {
	ClientTimestamp int64 `json:"client_timestamp"`
	ServerTimestamp int64 `json:"server_timestamp"`
}

// PlayerJoinedPayload 自己入座成功响应
type PlayerJoinedPayload struct {
	PlayerID string `json:"playerId"`
	Slot     int    `json:"slot"`
}

// PlayerConnectedPayload 玩家入座通知
type PlayerConnectedPayload struct {
	Slot       int    `json:"slot"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

// PlayerDisconnectedPayload 玩家离座通知
type PlayerDisconnectedPayload struct {
	Slot int `json:"slot"`
}

// DealerCardsPayload 庄家牌面通知
// 发牌阶段 Score 为 null、第二张为暗牌；庄家行动阶段全部亮出
type DealerCardsPayload struct {
	Cards         []CardInfo `json:"cards"`
	Score         *int       `json:"score"`
	DeckRemaining int        `json:"deckRemaining"`
}

// PlayerCardsPayload 玩家牌面通知
type PlayerCardsPayload struct {
	Slot  int        `json:"slot"`
	Cards []CardInfo `json:"cards"`
	Score int        `json:"score"`
	Bet   int        `json:"bet"`
}

// BetPlacedPayload 下注成功响应
type BetPlacedPayload struct {
	Slot    int    `json:"slot"`
	Amount  int    `json:"amount"`
	Message string `json:"message"`
}

// StandAckPayload 停牌确认
type StandAckPayload struct {
	Slot int `json:"slot"`
}

// GameResultPayload 本局结果
// 要牌爆掉时只带 Slot 和 Result；结算时附带庄家点数与累计分
type GameResultPayload struct {
	Slot        int    `json:"slot"`
	Result      string `json:"result"`
	DealerScore *int   `json:"dealerScore,omitempty"`
	TotalScore  *int   `json:"totalScore,omitempty"`
}

// ScoresPayload 各座位累计分快照，key 为座位号
type ScoresPayload map[string]int

// GameStatusPayload 牌桌状态提示
type GameStatusPayload struct {
	Status string `json:"status"`
}

// SplitAllowedPayload 允许分牌提示
type SplitAllowedPayload struct {
	Slot int `json:"slot"`
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Score      int    `json:"score"`
}

// LeaderboardPayload 排行榜响应
type LeaderboardPayload struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// OnlineCountPayload 在线人数响应
type OnlineCountPayload struct {
	Count int `json:"count"`
}

// ErrorPayload 错误响应
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
