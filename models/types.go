// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Message shown when a vote arrives without a valid choice
const NoChoiceSelected = "You didn't select a choice."

// Message shown on an index page with nothing published
const NoPollsAvailable = "No polls are available."

// Request types

type CreateQuestionRequest struct {
	Text string `json:"text"`
	// RFC3339; defaults to the current time when empty
	PublicationDate string `json:"publication_date"`
}

type CreateChoiceRequest struct {
	Text string `json:"text"`
}

type VoteRequest struct {
	ChoiceID int64 `json:"choice_id"`
}

// Response types

type QuestionSummary struct {
	Question
	Recent       bool   `json:"recent"`
	PublishedAgo string `json:"published_ago"`
}

type QuestionListResponse struct {
	Questions []QuestionSummary `json:"questions"`
	Empty     bool              `json:"empty"`
	Message   string            `json:"message,omitempty"`
}

type QuestionWithChoices struct {
	Question Question `json:"question"`
	Choices  []Choice `json:"choices"`
}

type ResultsResponse struct {
	Question   Question `json:"question"`
	Choices    []Choice `json:"choices"`
	TotalVotes int      `json:"total_votes"`
}

// Domain types

type Question struct {
	ID              int64     `json:"id"`
	Text            string    `json:"text"`
	PublicationDate time.Time `json:"publication_date"`
}

func (q Question) String() string {
	return q.Text
}

type Choice struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	Text       string `json:"text"`
	Votes      int    `json:"votes"`
}

func (c Choice) String() string {
	return c.Text
}

// TotalVotes sums the tallies of the given choices
func TotalVotes(choices []Choice) int {
	total := 0
	for _, c := range choices {
		total += c.Votes
	}
	return total
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
