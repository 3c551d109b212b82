package domain

import "time"

// MatchLog records one bot turn for the analytics dashboards. MatchedID is
// empty on fallback replies.
type MatchLog struct {
	ID              string
	ChatID          string
	Message         string
	MatchedID       string
	MatchedQuestion string
	Category        Category
	Score           int
	Escalated       bool
	Fallback        bool
	CreatedAt       time.Time
}
