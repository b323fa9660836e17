package dto

import "time"

type VoteRequest struct {
	UserID  uint      `json:"userId"`
	Amount  int       `json:"voteNum"`
	VotedAt time.Time `json:"time"`
}

type TradeRequest struct {
	Amount float64 `json:"amount"`
	Rank   int     `json:"rank"`
}

type EventRequest struct {
	EventName string `json:"eventName"`
	Keyword   string `json:"keyword"`
	UserID    uint   `json:"userId"`
}

type UserRequest struct {
	UserName string `json:"userName"`
	Gender   string `json:"gender"`
	Age      int    `json:"age"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}
