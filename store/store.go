// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/danielhkuo/polls/models"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrEmptyText = errors.New("text must not be empty")
)

// QuestionStore persists questions
type QuestionStore interface {
	// Find returns the question regardless of its publication date
	Find(ctx context.Context, id int64) (models.Question, error)
	// ListPublished returns up to limit questions published at or before now, newest first
	ListPublished(ctx context.Context, now time.Time, limit int) ([]models.Question, error)
	Create(ctx context.Context, text string, publicationDate time.Time) (models.Question, error)
}

// ChoiceStore persists choices and their vote tallies
type ChoiceStore interface {
	ListByQuestion(ctx context.Context, questionID int64) ([]models.Choice, error)
	Create(ctx context.Context, questionID int64, text string) (models.Choice, error)
	// IncrementVote adds one vote to the choice. Returns ErrNotFound if the
	// choice does not belong to the question.
	IncrementVote(ctx context.Context, questionID, choiceID int64) error
}

// IsNotFound reports whether err is or wraps ErrNotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func validText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	return text, nil
}
