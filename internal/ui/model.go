package ui

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/blackjack-table/internal/network/client"
	"github.com/palemoky/blackjack-table/internal/network/protocol"
)

const (
	minBet  = 1
	maxBet  = 10000
	betStep = 10
)

// serverMsg wraps a message pushed by the server
type serverMsg struct {
	msg *protocol.Message
}

// connClosedMsg signals that the connection dropped
type connClosedMsg struct{}

// Model is the table view for a single seated player
type Model struct {
	client *client.Client

	bet           int
	cards         []protocol.CardInfo
	score         int
	dealerCards   []protocol.CardInfo
	dealerScore   *int
	deckRemaining int
	totalScore    int
	scores        map[string]int

	status   string
	result   string
	errText  string
	canSplit bool

	leaderboard     []protocol.LeaderboardEntry
	showLeaderboard bool
	online          int

	quitting bool
}

// New creates the table model around an already-connected client
func New(c *client.Client) *Model {
	return &Model{
		client: c,
		bet:    100,
		scores: make(map[string]int),
		status: "Place your bet",
	}
}

// waitForServer blocks on the next server message
func waitForServer(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		msg, err := c.Receive()
		if err != nil {
			return connClosedMsg{}
		}
		return serverMsg{msg: msg}
	}
}

func (m *Model) Init() tea.Cmd {
	return waitForServer(m.client)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case serverMsg:
		m.handleServerMessage(msg.msg)
		return m, waitForServer(m.client)

	case connClosedMsg:
		m.errText = "Connection lost"
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// inHand reports whether the player currently has an undecided hand
func (m *Model) inHand() bool {
	return len(m.cards) > 0 && m.result == ""
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errText = ""

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		m.client.Close()
		return m, tea.Quit

	case "up", "+":
		if !m.inHand() && m.bet+betStep <= maxBet {
			m.bet += betStep
		}

	case "down", "-":
		if !m.inHand() && m.bet-betStep >= minBet {
			m.bet -= betStep
		}

	case "b", "enter":
		if !m.inHand() {
			m.send(m.client.PlaceBet(m.client.Slot, m.bet))
		}

	case "d":
		if !m.inHand() {
			m.cards = nil
			m.result = ""
			m.canSplit = false
			m.send(m.client.NewGame(m.client.Slot))
		}

	case "h":
		m.send(m.client.Hit(m.client.Slot))

	case "s":
		m.send(m.client.Stand(m.client.Slot))

	case "x":
		m.send(m.client.Double(m.client.Slot))

	case "p":
		m.send(m.client.Split(m.client.Slot))

	case "l":
		if m.showLeaderboard {
			m.showLeaderboard = false
		} else {
			m.send(m.client.GetLeaderboard(10))
		}

	case "o":
		m.send(m.client.GetOnlineCount())
	}

	return m, nil
}

func (m *Model) send(err error) {
	if err != nil {
		m.errText = err.Error()
	}
}

func (m *Model) handleServerMessage(msg *protocol.Message) {
	switch msg.Type {
	case protocol.MsgPlayerJoined:
		var payload protocol.PlayerJoinedPayload
		if json.Unmarshal(msg.Payload, &payload) == nil {
			m.status = fmt.Sprintf("Seated at seat %d - place your bet", payload.Slot)
		}

	case protocol.MsgBetPlaced:
		var payload protocol.BetPlacedPayload
		if json.Unmarshal(msg.Payload, &payload) == nil {
			m.status = payload.Message
		}

	case protocol.MsgPlayerCards:
		var payload protocol.PlayerCardsPayload
		if json.Unmarshal(msg.Payload, &payload) == nil && payload.Slot == m.client.Slot {
			m.cards = payload.Cards
			m.score = payload.Score
			m.bet = payload.Bet
			m.result = ""
			m.status = "Hit, stand or double"
		}

	case protocol.MsgDealerCards:
		var payload protocol.DealerCardsPayload
		if json.Unmarshal(msg.Payload, &payload) == nil {
			m.dealerCards = payload.Cards
			m.dealerScore = payload.Score
			m.deckRemaining = payload.DeckRemaining
		}

	case protocol.MsgGameResult:
		var payload protocol.GameResultPayload
		if json.Unmarshal(msg.Payload, &payload) == nil && payload.Slot == m.client.Slot {
			m.result = payload.Result
			if payload.TotalScore != nil {
				m.totalScore = *payload.TotalScore
			}
		}

	case protocol.MsgUpdateScores:
		var payload protocol.ScoresPayload
		if json.Unmarshal(msg.Payload, &payload) == nil {
			m.scores = payload
		}

	case protocol.MsgGameStatus:
		var payload protocol.GameStatusPayload
		if json.Unmarshal(msg.Payload, &payload) == nil {
			m.status = payload.Status
		}

	case protocol.MsgSplitAllowed:
		m.canSplit = true
		m.status = "Split is allowed for this hand"

	case protocol.MsgLeaderboard:
		var payload protocol.LeaderboardPayload
		if json.Unmarshal(msg.Payload, &payload) == nil {
			m.leaderboard = payload.Entries
			m.showLeaderboard = true
		}

	case protocol.MsgOnlineCount:
		var payload protocol.OnlineCountPayload
		if json.Unmarshal(msg.Payload, &payload) == nil {
			m.online = payload.Count
		}

	case protocol.MsgError:
		var payload protocol.ErrorPayload
		if json.Unmarshal(msg.Payload, &payload) == nil {
			m.errText = payload.Message
		}
	}
}

func (m *Model) View() string {
	if m.quitting {
		return "Thanks for playing!\n"
	}

	title := titleStyle.Render("♠ Blackjack Table ♠")

	dealerLine := labelStyle.Render("Dealer  ") + renderHand(m.dealerCards)
	if m.dealerScore != nil {
		dealerLine += labelStyle.Render(fmt.Sprintf("  (%d)", *m.dealerScore))
	}

	handLine := labelStyle.Render(fmt.Sprintf("Seat %d  ", m.client.Slot)) + renderHand(m.cards)
	if len(m.cards) > 0 {
		handLine += labelStyle.Render(fmt.Sprintf("  (%d)", m.score))
	}

	betLine := labelStyle.Render("Bet ") + strconv.Itoa(m.bet) +
		labelStyle.Render("  Total ") + strconv.Itoa(m.totalScore)
	if m.online > 0 {
		betLine += labelStyle.Render(fmt.Sprintf("  Online %d", m.online))
	}
	if m.deckRemaining > 0 {
		betLine += labelStyle.Render(fmt.Sprintf("  Shoe %d", m.deckRemaining))
	}

	statusLine := m.status
	switch m.result {
	case protocol.ResultWin:
		statusLine = winStyle.Render("You win!")
	case protocol.ResultLoss:
		statusLine = lossStyle.Render("You lose")
	case protocol.ResultPush:
		statusLine = pushStyle.Render("Push")
	case protocol.ResultBust:
		statusLine = lossStyle.Render("Bust!")
	}

	body := title + "\n\n" + dealerLine + "\n\n" + handLine + "\n\n" + betLine + "\n" + statusLine

	if m.errText != "" {
		body += "\n" + errorStyle.Render(m.errText)
	}

	if m.showLeaderboard {
		body += "\n\n" + m.viewLeaderboard()
	}

	body += helpStyle.Render("\n↑/↓ bet · b place bet · d deal · h hit · s stand · x double · p split · l leaderboard · q quit")

	// Other seats' running totals
	if len(m.scores) > 0 {
		body += "\n" + m.viewScores()
	}

	return docStyle.Render(body)
}

func (m *Model) viewLeaderboard() string {
	out := titleStyle.Render("Leaderboard") + "\n"
	for _, e := range m.leaderboard {
		out += fmt.Sprintf("%2d. %-16s %6d\n", e.Rank, e.PlayerName, e.Score)
	}
	return boxStyle.Render(out)
}

func (m *Model) viewScores() string {
	slots := make([]string, 0, len(m.scores))
	for slot := range m.scores {
		slots = append(slots, slot)
	}
	sort.Strings(slots)

	out := ""
	for i, slot := range slots {
		if i > 0 {
			out += "  "
		}
		out += labelStyle.Render("S"+slot+":") + strconv.Itoa(m.scores[slot])
	}
	return out
}
