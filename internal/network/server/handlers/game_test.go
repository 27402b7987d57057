package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/blackjack-table/internal/network/protocol"
)

func TestHandleClaimSeat(t *testing.T) {
	server := newStubServer()
	handler := NewHandler(server)
	client := newMockClient("p1", "Alice")

	msg := protocol.MustNewMessage(protocol.MsgClaimSeat, protocol.ClaimSeatPayload{Slot: 3})
	handler.Handle(client, msg)

	// Seat events flow through the sink, not the handler
	assert.True(t, server.sink.hasDirect("p1", protocol.MsgPlayerJoined))
	client.AssertNotCalled(t, "SendMessage", mock.Anything)
}

func TestHandleClaimSeat_SeatTaken(t *testing.T) {
	server := newStubServer()
	handler := NewHandler(server)

	first := newMockClient("p1", "Alice")
	msg := protocol.MustNewMessage(protocol.MsgClaimSeat, protocol.ClaimSeatPayload{Slot: 3})
	handler.Handle(first, msg)

	second := newMockClient("p2", "Bob")
	second.On("SendMessage", errorWithCode(protocol.ErrCodeSeatTaken)).Once()
	handler.Handle(second, msg)
	second.AssertExpectations(t)
}

func TestHandleClaimSeat_InvalidPayload(t *testing.T) {
	server := newStubServer()
	handler := NewHandler(server)
	client := newMockClient("p1", "Alice")
	client.On("SendMessage", errorWithCode(protocol.ErrCodeInvalidMsg)).Once()

	handler.Handle(client, &protocol.Message{Type: protocol.MsgClaimSeat, Payload: []byte(`"oops"`)})
	client.AssertExpectations(t)
}

func TestHandlePlaceBet(t *testing.T) {
	server := newStubServer()
	handler := NewHandler(server)
	client := newMockClient("p1", "Alice")

	handler.Handle(client, protocol.MustNewMessage(protocol.MsgClaimSeat, protocol.ClaimSeatPayload{Slot: 1}))
	handler.Handle(client, protocol.MustNewMessage(protocol.MsgPlaceBet, protocol.PlaceBetPayload{Slot: 1, Amount: 100}))

	assert.True(t, server.sink.hasDirect("p1", protocol.MsgBetPlaced))
	client.AssertNotCalled(t, "SendMessage", mock.Anything)
}

func TestHandlePlaceBet_InvalidAmount(t *testing.T) {
	server := newStubServer()
	handler := NewHandler(server)
	client := newMockClient("p1", "Alice")
	client.On("SendMessage", errorWithCode(protocol.ErrCodeInvalidBet)).Once()

	handler.Handle(client, protocol.MustNewMessage(protocol.MsgClaimSeat, protocol.ClaimSeatPayload{Slot: 1}))
	handler.Handle(client, protocol.MustNewMessage(protocol.MsgPlaceBet, protocol.PlaceBetPayload{Slot: 1, Amount: 20000}))
	client.AssertExpectations(t)
}

func TestHandleNewGame_WithoutBet(t *testing.T) {
	server := newStubServer()
	handler := NewHandler(server)
	client := newMockClient("p1", "Alice")
	client.On("SendMessage", errorWithCode(protocol.ErrCodeNoBetPlaced)).Once()

	handler.Handle(client, protocol.MustNewMessage(protocol.MsgClaimSeat, protocol.ClaimSeatPayload{Slot: 1}))
	handler.Handle(client, protocol.MustNewMessage(protocol.MsgNewGame, protocol.SeatActionPayload{Slot: 1}))
	client.AssertExpectations(t)
}

func TestHandleFullDealFlow(t *testing.T) {
	server := newStubServer()
	handler := NewHandler(server)
	client := newMockClient("p1", "Alice")

	handler.Handle(client, protocol.MustNewMessage(protocol.MsgClaimSeat, protocol.ClaimSeatPayload{Slot: 1}))
	handler.Handle(client, protocol.MustNewMessage(protocol.MsgPlaceBet, protocol.PlaceBetPayload{Slot: 1, Amount: 100}))
	handler.Handle(client, protocol.MustNewMessage(protocol.MsgNewGame, protocol.SeatActionPayload{Slot: 1}))

	require.True(t, server.sink.hasDirect("p1", protocol.MsgPlayerCards))
	client.AssertNotCalled(t, "SendMessage", mock.Anything)
}

func TestHandleStand_WithoutHand(t *testing.T) {
	server := newStubServer()
	handler := NewHandler(server)
	client := newMockClient("p1", "Alice")
	client.On("SendMessage", errorWithCode(protocol.ErrCodeNoActiveHand)).Once()

	handler.Handle(client, protocol.MustNewMessage(protocol.MsgClaimSeat, protocol.ClaimSeatPayload{Slot: 1}))
	handler.Handle(client, protocol.MustNewMessage(protocol.MsgPlayerStand, protocol.SeatActionPayload{Slot: 1}))
	client.AssertExpectations(t)
}

func TestHandleAction_NotOwnSeat(t *testing.T) {
	server := newStubServer()
	handler := NewHandler(server)

	owner := newMockClient("p1", "Alice")
	handler.Handle(owner, protocol.MustNewMessage(protocol.MsgClaimSeat, protocol.ClaimSeatPayload{Slot: 2}))

	intruder := newMockClient("p2", "Bob")
	intruder.On("SendMessage", errorWithCode(protocol.ErrCodeInvalidSeat)).Once()
	handler.Handle(intruder, protocol.MustNewMessage(protocol.MsgPlayerHit, protocol.SeatActionPayload{Slot: 2}))
	intruder.AssertExpectations(t)
}

func TestHandleUnknownMessage(t *testing.T) {
	server := newStubServer()
	handler := NewHandler(server)
	client := newMockClient("p1", "Alice")
	client.On("SendMessage", errorWithCode(protocol.ErrCodeInvalidMsg)).Once()

	handler.Handle(client, &protocol.Message{Type: "teleport"})
	client.AssertExpectations(t)
}
