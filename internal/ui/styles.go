package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/blackjack-table/internal/network/protocol"
)

// Lipgloss styles
var (
	docStyle    = lipgloss.NewStyle().Margin(1, 2)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true)
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	blackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	hiddenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	lossStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	pushStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

var suitSymbols = map[string]string{
	"H": "♥",
	"D": "♦",
	"C": "♣",
	"S": "♠",
}

// renderCard draws a single card, hole cards render as a back
func renderCard(c protocol.CardInfo) string {
	if c.Hidden {
		return hiddenStyle.Render(" ?? ")
	}

	symbol, ok := suitSymbols[c.Suit]
	if !ok {
		symbol = c.Suit
	}

	style := blackStyle
	if c.Suit == "H" || c.Suit == "D" {
		style = redStyle
	}
	return style.Render(" " + c.Value + symbol + " ")
}

// renderHand draws a full hand with a space between cards
func renderHand(cards []protocol.CardInfo) string {
	if len(cards) == 0 {
		return labelStyle.Render("(no cards)")
	}

	out := ""
	for i, c := range cards {
		if i > 0 {
			out += " "
		}
		out += renderCard(c)
	}
	return out
}
