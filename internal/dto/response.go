package dto

// EventSummary is the listing shape: the owning user is referenced by id
// only, never nested.
type EventSummary struct {
	UserID    uint   `json:"userId"`
	EventName string `json:"eventName"`
	Keyword   string `json:"keyword"`
	Rank      int    `json:"rank"`
	VoteScore int    `json:"voteNum"`
}

// StandingsUpdate is broadcast on the fanout exchange after a vote or a
// rank purchase changes an event's standing.
type StandingsUpdate struct {
	EventID   uint `json:"eventId"`
	Rank      int  `json:"rank"`
	VoteScore int  `json:"voteNum"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
