package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/blackjack-table/internal/config"
	"github.com/palemoky/blackjack-table/internal/network/protocol"
)

func TestServer_RegisterUnregister_Concurrency(t *testing.T) {
	t.Parallel()

	count := 100
	s := &Server{
		clients:   make(map[string]*Client),
		semaphore: make(chan struct{}, count),
	}

	// Concurrent register, each connection holds a semaphore slot
	var wg sync.WaitGroup
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func(i int) {
			defer wg.Done()
			s.semaphore <- struct{}{}
			s.registerClient(&Client{ID: fmt.Sprintf("c%d", i)})
		}(i)
	}
	wg.Wait()
	assert.Equal(t, count, s.GetOnlineCount())

	// Concurrent unregister
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func(i int) {
			defer wg.Done()
			s.unregisterClient(&Client{ID: fmt.Sprintf("c%d", i)})
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 0, s.GetOnlineCount())
	assert.Empty(t, s.semaphore)
}

func TestServer_HandleHealth(t *testing.T) {
	t.Parallel()

	s := &Server{}
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestServer_DirectAndBroadcast(t *testing.T) {
	t.Parallel()

	s := &Server{clients: make(map[string]*Client)}
	c1 := &Client{ID: "p1", send: make(chan []byte, 8)}
	c2 := &Client{ID: "p2", send: make(chan []byte, 8)}
	s.clients["p1"] = c1
	s.clients["p2"] = c2

	msg := protocol.MustNewMessage(protocol.MsgGameStatus, protocol.GameStatusPayload{Status: "hello"})

	s.Direct("p1", msg)
	assert.Len(t, c1.send, 1)
	assert.Empty(t, c2.send)

	// Direct to an unknown player is a no-op
	s.Direct("ghost", msg)

	s.Broadcast(msg)
	assert.Len(t, c1.send, 2)
	assert.Len(t, c2.send, 1)
}

// --- WebSocket integration ---

func newTestServer(t *testing.T) *Server {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := config.Default()
	cfg.Redis.Addr = mr.Addr()
	cfg.Security.AllowedOrigins = []string{"*"}
	// Fast dealer so a full round settles quickly
	cfg.Game.RevealDelay = 1
	cfg.Game.DrawDelay = 1
	cfg.Game.SettleDelay = 1

	s, err := NewServer(cfg)
	require.NoError(t, err)
	return s
}

func dialTestServer(t *testing.T, s *Server) *websocket.Conn {
	ts := httptest.NewServer(http.HandlerFunc(s.handleWebSocket))
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// waitForMessage reads until a message of the wanted type arrives
func waitForMessage(t *testing.T, conn *websocket.Conn, want protocol.MessageType) *protocol.Message {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	require.NoError(t, conn.SetReadDeadline(deadline))

	for {
		_, data, err := conn.ReadMessage()
		require.NoError(t, err, "waiting for %s", want)

		msg, err := protocol.Decode(data)
		require.NoError(t, err)
		if msg.Type == want {
			return msg
		}
	}
}

func sendMessage(t *testing.T, conn *websocket.Conn, msg *protocol.Message) {
	t.Helper()
	data, err := msg.Encode()
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, data))
}

func TestWebSocket_FullRound(t *testing.T) {
	s := newTestServer(t)
	conn := dialTestServer(t, s)

	// Connecting auto-assigns the first free seat
	joined := waitForMessage(t, conn, protocol.MsgPlayerJoined)
	joinedPayload, err := protocol.ParsePayload[protocol.PlayerJoinedPayload](joined)
	require.NoError(t, err)
	slot := joinedPayload.Slot
	assert.Equal(t, 1, slot)

	// Place a bet and deal
	sendMessage(t, conn, protocol.MustNewMessage(protocol.MsgPlaceBet, protocol.PlaceBetPayload{Slot: slot, Amount: 100}))
	waitForMessage(t, conn, protocol.MsgBetPlaced)

	sendMessage(t, conn, protocol.MustNewMessage(protocol.MsgNewGame, protocol.SeatActionPayload{Slot: slot}))
	cardsMsg := waitForMessage(t, conn, protocol.MsgPlayerCards)
	cards, err := protocol.ParsePayload[protocol.PlayerCardsPayload](cardsMsg)
	require.NoError(t, err)
	assert.Len(t, cards.Cards, 2)
	assert.Equal(t, 100, cards.Bet)

	// The dealer broadcast keeps its hole card hidden during the deal
	dealerMsg := waitForMessage(t, conn, protocol.MsgDealerCards)
	dealer, err := protocol.ParsePayload[protocol.DealerCardsPayload](dealerMsg)
	require.NoError(t, err)
	require.Len(t, dealer.Cards, 2)
	assert.True(t, dealer.Cards[1].Hidden)
	assert.Nil(t, dealer.Score)

	// Stand and let the dealer play out the round
	sendMessage(t, conn, protocol.MustNewMessage(protocol.MsgPlayerStand, protocol.SeatActionPayload{Slot: slot}))
	result := waitForMessage(t, conn, protocol.MsgGameResult)
	resultPayload, err := protocol.ParsePayload[protocol.GameResultPayload](result)
	require.NoError(t, err)
	assert.Equal(t, slot, resultPayload.Slot)
	assert.Contains(t, []string{protocol.ResultWin, protocol.ResultLoss, protocol.ResultPush}, resultPayload.Result)
	require.NotNil(t, resultPayload.DealerScore)
	assert.GreaterOrEqual(t, *resultPayload.DealerScore, 17)

	waitForMessage(t, conn, protocol.MsgUpdateScores)
}

func TestWebSocket_PingPong(t *testing.T) {
	s := newTestServer(t)
	conn := dialTestServer(t, s)

	sendMessage(t, conn, protocol.MustNewMessage(protocol.MsgPing, protocol.PingPayload{Timestamp: 7}))
	pong := waitForMessage(t, conn, protocol.MsgPong)
	payload, err := protocol.ParsePayload[protocol.PongPayload](pong)
	require.NoError(t, err)
	assert.Equal(t, int64(7), payload.ClientTimestamp)
}

func TestWebSocket_SecondPlayerSeesFirst(t *testing.T) {
	s := newTestServer(t)

	conn1 := dialTestServer(t, s)
	waitForMessage(t, conn1, protocol.MsgPlayerJoined)

	conn2 := dialTestServer(t, s)
	joined := waitForMessage(t, conn2, protocol.MsgPlayerJoined)
	payload, err := protocol.ParsePayload[protocol.PlayerJoinedPayload](joined)
	require.NoError(t, err)
	assert.Equal(t, 2, payload.Slot)

	// First player sees the broadcast for seat 2
	for {
		msg := waitForMessage(t, conn1, protocol.MsgPlayerConnected)
		connected, err := protocol.ParsePayload[protocol.PlayerConnectedPayload](msg)
		require.NoError(t, err)
		if connected.Slot == 2 {
			break
		}
	}
}
