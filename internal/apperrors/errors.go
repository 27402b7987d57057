package apperrors

import (
	"github.com/palemoky/blackjack-table/internal/network/protocol"
)

// GameError 游戏错误，携带协议错误码，直接回给发起请求的连接
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrTableFull       = &GameError{Code: protocol.ErrCodeTableFull, Message: "all seats are taken"}
	ErrAlreadySeated   = &GameError{Code: protocol.ErrCodeAlreadySeated, Message: "you already hold a seat"}
	ErrSeatTaken       = &GameError{Code: protocol.ErrCodeSeatTaken, Message: "this seat is taken"}
	ErrInvalidSeat     = &GameError{Code: protocol.ErrCodeInvalidSeat, Message: "no such seat"}
	ErrInvalidBet      = &GameError{Code: protocol.ErrCodeInvalidBet, Message: "invalid bet amount (1-10000)"}
	ErrNoBetPlaced     = &GameError{Code: protocol.ErrCodeNoBetPlaced, Message: "place a bet first"}
	ErrInvalidSplit    = &GameError{Code: protocol.ErrCodeInvalidSplit, Message: "split requires two cards of equal rank"}
	ErrRoundInProgress = &GameError{Code: protocol.ErrCodeRoundInProgress, Message: "wait for the current round to finish"}
	ErrNoActiveHand    = &GameError{Code: protocol.ErrCodeNoActiveHand, Message: "no active hand on this seat"}
)
