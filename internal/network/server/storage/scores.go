package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/palemoky/blackjack-table/internal/network/protocol"
)

const (
	// Redis key
	playerScoreKeyPrefix = "player:score:"
	playerNameKeyPrefix  = "player:name:"
	leaderboardKey       = "leaderboard:score"

	// DefaultLeaderboardSize 排行榜默认条数
	DefaultLeaderboardSize = 10
	// MaxLeaderboardSize 排行榜最大条数
	MaxLeaderboardSize = 100
)

// ScoreStore 玩家累计分存储
// 分数以玩家 ID 为键持久化，座位易主、断线重连都不丢分；
// 同时维护一个 ZSET 作为全服排行榜
type ScoreStore struct {
	redis *redis.Client
}

// NewScoreStore 创建累计分存储
func NewScoreStore(client *redis.Client) *ScoreStore {
	return &ScoreStore{redis: client}
}

// IncrScore 结算后累加玩家分数，返回累加后的总分
// 顺带记录玩家昵称并同步排行榜
func (ss *ScoreStore) IncrScore(ctx context.Context, playerID, playerName string, delta int) (int, error) {
	pipe := ss.redis.TxPipeline()
	incr := pipe.IncrBy(ctx, playerScoreKeyPrefix+playerID, int64(delta))
	pipe.ZIncrBy(ctx, leaderboardKey, float64(delta), playerID)
	pipe.Set(ctx, playerNameKeyPrefix+playerID, playerName, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return int(incr.Val()), nil
}

// GetScore 读取玩家累计分，没有记录返回 0
func (ss *ScoreStore) GetScore(ctx context.Context, playerID string) (int, error) {
	score, err := ss.redis.Get(ctx, playerScoreKeyPrefix+playerID).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return score, nil
}

// GetLeaderboard 返回按累计分降序的前 limit 名
func (ss *ScoreStore) GetLeaderboard(ctx context.Context, limit int) ([]protocol.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}
	if limit > MaxLeaderboardSize {
		limit = MaxLeaderboardSize
	}

	members, err := ss.redis.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return []protocol.LeaderboardEntry{}, nil
	}

	nameKeys := make([]string, len(members))
	for i, m := range members {
		nameKeys[i] = playerNameKeyPrefix + m.Member.(string)
	}
	names, err := ss.redis.MGet(ctx, nameKeys...).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]protocol.LeaderboardEntry, len(members))
	for i, m := range members {
		name := ""
		if s, ok := names[i].(string); ok {
			name = s
		}
		entries[i] = protocol.LeaderboardEntry{
			Rank:       i + 1,
			PlayerID:   m.Member.(string),
			PlayerName: name,
			Score:      int(m.Score),
		}
	}
	return entries, nil
}
