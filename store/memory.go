// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/publication"
)

// MemoryStore keeps questions and choices in process memory.
// Used for DATABASE_TYPE=memory and in tests.
type MemoryStore struct {
	mu         sync.Mutex
	questions  map[int64]models.Question
	choices    map[int64]models.Choice
	nextQID    int64
	nextChoice int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		questions: make(map[int64]models.Question),
		choices:   make(map[int64]models.Choice),
	}
}

func (m *MemoryStore) Questions() QuestionStore { return memQuestions{m} }

func (m *MemoryStore) Choices() ChoiceStore { return memChoices{m} }

type memQuestions struct{ m *MemoryStore }

type memChoices struct{ m *MemoryStore }

func (q memQuestions) Find(_ context.Context, id int64) (models.Question, error) {
	q.m.mu.Lock()
	defer q.m.mu.Unlock()

	question, ok := q.m.questions[id]
	if !ok {
		return models.Question{}, ErrNotFound
	}
	return question, nil
}

func (q memQuestions) ListPublished(_ context.Context, now time.Time, limit int) ([]models.Question, error) {
	q.m.mu.Lock()
	all := make([]models.Question, 0, len(q.m.questions))
	for _, question := range q.m.questions {
		all = append(all, question)
	}
	q.m.mu.Unlock()

	return publication.ListPublished(all, now, limit), nil
}

func (q memQuestions) Create(_ context.Context, text string, publicationDate time.Time) (models.Question, error) {
	text, err := validText(text)
	if err != nil {
		return models.Question{}, err
	}

	q.m.mu.Lock()
	defer q.m.mu.Unlock()

	q.m.nextQID++
	question := models.Question{
		ID:              q.m.nextQID,
		Text:            text,
		PublicationDate: publicationDate.UTC(),
	}
	q.m.questions[question.ID] = question
	return question, nil
}

func (c memChoices) ListByQuestion(_ context.Context, questionID int64) ([]models.Choice, error) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()

	choices := []models.Choice{}
	for _, choice := range c.m.choices {
		if choice.QuestionID == questionID {
			choices = append(choices, choice)
		}
	}
	sort.Slice(choices, func(i, j int) bool { return choices[i].ID < choices[j].ID })
	return choices, nil
}

func (c memChoices) Create(_ context.Context, questionID int64, text string) (models.Choice, error) {
	text, err := validText(text)
	if err != nil {
		return models.Choice{}, err
	}

	c.m.mu.Lock()
	defer c.m.mu.Unlock()

	if _, ok := c.m.questions[questionID]; !ok {
		return models.Choice{}, ErrNotFound
	}

	c.m.nextChoice++
	choice := models.Choice{ID: c.m.nextChoice, QuestionID: questionID, Text: text}
	c.m.choices[choice.ID] = choice
	return choice, nil
}

func (c memChoices) IncrementVote(_ context.Context, questionID, choiceID int64) error {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()

	choice, ok := c.m.choices[choiceID]
	if !ok || choice.QuestionID != questionID {
		return ErrNotFound
	}
	choice.Votes++
	c.m.choices[choiceID] = choice
	return nil
}
