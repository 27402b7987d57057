package handlers

import (
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/palemoky/blackjack-table/internal/network/protocol"
)

func TestHandlePing(t *testing.T) {
	server := newStubServer()
	handler := NewHandler(server)

	client := newMockClient("p1", "Alice")
	client.On("SendMessage", mock.MatchedBy(func(msg *protocol.Message) bool {
		if msg.Type != protocol.MsgPong {
			return false
		}
		payload, err := protocol.ParsePayload[protocol.PongPayload](msg)
		return err == nil && payload.ClientTimestamp == 12345 && payload.ServerTimestamp > 0
	})).Once()

	handler.Handle(client, protocol.MustNewMessage(protocol.MsgPing, protocol.PingPayload{Timestamp: 12345}))
	client.AssertExpectations(t)
}

func TestHandlePing_BadPayloadIgnored(t *testing.T) {
	server := newStubServer()
	handler := NewHandler(server)

	client := newMockClient("p1", "Alice")
	handler.Handle(client, &protocol.Message{Type: protocol.MsgPing, Payload: []byte(`[`)})
	client.AssertNotCalled(t, "SendMessage", mock.Anything)
}
