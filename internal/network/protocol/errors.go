package protocol

// 错误码
const (
	ErrCodeUnknown    = 1000
	ErrCodeInvalidMsg = 1001
	ErrCodeRateLimit  = 1002 // 速率限制

	ErrCodeTableFull     = 2001 // 所有座位已满
	ErrCodeAlreadySeated = 2002 // 已经占有座位
	ErrCodeSeatTaken     = 2003 // 座位已被占用
	ErrCodeInvalidSeat   = 2004 // 座位号不存在或不属于自己

	ErrCodeInvalidBet      = 3001 // 下注金额非法
	ErrCodeNoBetPlaced     = 3002 // 未下注就开局
	ErrCodeInvalidSplit    = 3003 // 两张牌点数不同，不能分牌
	ErrCodeRoundInProgress = 3004 // 本轮尚未结束
	ErrCodeNoActiveHand    = 3005 // 该座位没有行动中的手牌
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:    "unknown error",
	ErrCodeInvalidMsg: "invalid message format",
	ErrCodeRateLimit:  "too many requests",

	ErrCodeTableFull:     "all seats are taken",
	ErrCodeAlreadySeated: "you already hold a seat",
	ErrCodeSeatTaken:     "this seat is taken",
	ErrCodeInvalidSeat:   "no such seat",

	ErrCodeInvalidBet:      "invalid bet amount (1-10000)",
	ErrCodeNoBetPlaced:     "place a bet first",
	ErrCodeInvalidSplit:    "split requires two cards of equal rank",
	ErrCodeRoundInProgress: "wait for the current round to finish",
	ErrCodeNoActiveHand:    "no active hand on this seat",
}
