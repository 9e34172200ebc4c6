package models

import "time"

// Milestone is a fixed day-count threshold that unlocks a one-time badge.
type Milestone struct {
	Days    int    `json:"days"`
	Badge   string `json:"badge"`
	Message string `json:"message"`
}

// AIMessage is a generated personalized message kept in the local history.
type AIMessage struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
