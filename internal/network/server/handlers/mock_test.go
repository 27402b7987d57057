package handlers

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/palemoky/blackjack-table/internal/game/table"
	"github.com/palemoky/blackjack-table/internal/network/protocol"
	"github.com/palemoky/blackjack-table/internal/network/server/types"
)

// --- MockClient ---

type MockClient struct {
	mock.Mock
}

func (m *MockClient) GetID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) GetName() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) SendMessage(msg *protocol.Message) {
	m.Called(msg)
}

func (m *MockClient) Close() {
	m.Called()
}

// --- MockLeaderboard ---

type MockLeaderboard struct {
	mock.Mock
}

func (m *MockLeaderboard) GetLeaderboard(ctx context.Context, limit int) ([]protocol.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]protocol.LeaderboardEntry), args.Error(1)
}

// --- Table fixtures ---

// collectSink records table events so tests can assert on them
type collectSink struct {
	mu        sync.Mutex
	direct    map[string][]*protocol.Message
	broadcast []*protocol.Message
}

func newCollectSink() *collectSink {
	return &collectSink{direct: make(map[string][]*protocol.Message)}
}

func (s *collectSink) Direct(playerID string, msg *protocol.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.direct[playerID] = append(s.direct[playerID], msg)
}

func (s *collectSink) Broadcast(msg *protocol.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.broadcast = append(s.broadcast, msg)
}

func (s *collectSink) directCount(playerID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.direct[playerID])
}

func (s *collectSink) hasDirect(playerID string, msgType protocol.MessageType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, msg := range s.direct[playerID] {
		if msg.Type == msgType {
			return true
		}
	}
	return false
}

// memScores is an in-memory table.ScoreStore
type memScores struct {
	mu     sync.Mutex
	scores map[string]int
}

func newMemScores() *memScores {
	return &memScores{scores: make(map[string]int)}
}

func (f *memScores) IncrScore(_ context.Context, playerID, _ string, delta int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scores[playerID] += delta
	return f.scores[playerID], nil
}

func (f *memScores) GetScore(_ context.Context, playerID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.scores[playerID], nil
}

// --- stubServer ---

// stubServer wires a real table behind the ServerContext interface
type stubServer struct {
	tbl         *table.Table
	sink        *collectSink
	leaderboard *MockLeaderboard
	online      int
}

func newStubServer() *stubServer {
	s := &stubServer{
		sink:        newCollectSink(),
		leaderboard: &MockLeaderboard{},
	}
	s.tbl = table.New(table.Config{MinBet: 1, MaxBet: 10000}, s.sink, newMemScores())
	return s
}

func (s *stubServer) GetTable() *table.Table                  { return s.tbl }
func (s *stubServer) GetLeaderboard() types.LeaderboardProvider { return s.leaderboard }
func (s *stubServer) GetOnlineCount() int                     { return s.online }

// newMockClient returns a client with ID/Name stubbed
func newMockClient(id, name string) *MockClient {
	client := &MockClient{}
	client.On("GetID").Return(id).Maybe()
	client.On("GetName").Return(name).Maybe()
	return client
}

// errorWithCode matches an error message carrying the given code
func errorWithCode(code int) any {
	return mock.MatchedBy(func(msg *protocol.Message) bool {
		if msg.Type != protocol.MsgError {
			return false
		}
		payload, err := protocol.ParsePayload[protocol.ErrorPayload](msg)
		return err == nil && payload.Code == code
	})
}
