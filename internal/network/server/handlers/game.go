package handlers

import (
	"errors"

	"github.com/palemoky/blackjack-table/internal/apperrors"
	"github.com/palemoky/blackjack-table/internal/network/protocol"
	"github.com/palemoky/blackjack-table/internal/network/server/types"
)

// sendGameError 把牌桌错误转成协议错误消息发回客户端
func sendGameError(client types.ClientInterface, err error) {
	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		client.SendMessage(protocol.NewErrorMessage(gameErr.Code))
		return
	}
	client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
}

// handleClaimSeat 处理点击空位入座
func (h *Handler) handleClaimSeat(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.ClaimSeatPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.server.GetTable().ClaimSeat(client.GetID(), client.GetName(), payload.Slot); err != nil {
		sendGameError(client, err)
	}
}

// handlePlaceBet 处理下注
func (h *Handler) handlePlaceBet(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PlaceBetPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.server.GetTable().PlaceBet(client.GetID(), payload.Slot, payload.Amount); err != nil {
		sendGameError(client, err)
	}
}

// handleNewGame 处理开始新一局
func (h *Handler) handleNewGame(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.SeatActionPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.server.GetTable().NewGame(client.GetID(), payload.Slot); err != nil {
		sendGameError(client, err)
	}
}

// handleHit 处理要牌
func (h *Handler) handleHit(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.SeatActionPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.server.GetTable().Hit(client.GetID(), payload.Slot); err != nil {
		sendGameError(client, err)
	}
}

// handleStand 处理停牌
func (h *Handler) handleStand(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.SeatActionPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.server.GetTable().Stand(client.GetID(), payload.Slot); err != nil {
		sendGameError(client, err)
	}
}

// handleDouble 处理加倍
func (h *Handler) handleDouble(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.SeatActionPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.server.GetTable().Double(client.GetID(), payload.Slot); err != nil {
		sendGameError(client, err)
	}
}

// handleSplit 处理分牌查询
func (h *Handler) handleSplit(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.SeatActionPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.server.GetTable().Split(client.GetID(), payload.Slot); err != nil {
		sendGameError(client, err)
	}
}
