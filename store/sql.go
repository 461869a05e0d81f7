// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/publication"
)

// SQLStore implements QuestionStore and ChoiceStore on top of database/sql.
// Queries use $N placeholders, which both lib/pq and modernc sqlite accept.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Questions returns the store as a QuestionStore
func (s *SQLStore) Questions() QuestionStore { return sqlQuestions{s} }

// Choices returns the store as a ChoiceStore
func (s *SQLStore) Choices() ChoiceStore { return sqlChoices{s} }

type sqlQuestions struct{ s *SQLStore }

type sqlChoices struct{ s *SQLStore }

func (q sqlQuestions) Find(ctx context.Context, id int64) (models.Question, error) {
	var question models.Question
	err := q.s.db.QueryRowContext(ctx, `
		SELECT id, question_text, publication_date
		FROM question
		WHERE id = $1
	`, id).Scan(&question.ID, &question.Text, &question.PublicationDate)

	if err == sql.ErrNoRows {
		return models.Question{}, ErrNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to query question %d: %w", id, err)
	}

	question.PublicationDate = question.PublicationDate.UTC()
	return question, nil
}

func (q sqlQuestions) ListPublished(ctx context.Context, now time.Time, limit int) ([]models.Question, error) {
	if limit <= 0 {
		limit = publication.DefaultLimit
	}

	rows, err := q.s.db.QueryContext(ctx, `
		SELECT id, question_text, publication_date
		FROM question
		WHERE publication_date <= $1
		ORDER BY publication_date DESC, id DESC
		LIMIT $2
	`, now.UTC(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var question models.Question
		if err := rows.Scan(&question.ID, &question.Text, &question.PublicationDate); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		question.PublicationDate = question.PublicationDate.UTC()
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate questions: %w", err)
	}

	return questions, nil
}

func (q sqlQuestions) Create(ctx context.Context, text string, publicationDate time.Time) (models.Question, error) {
	text, err := validText(text)
	if err != nil {
		return models.Question{}, err
	}

	question := models.Question{Text: text, PublicationDate: publicationDate.UTC()}
	err = q.s.db.QueryRowContext(ctx, `
		INSERT INTO question (question_text, publication_date)
		VALUES ($1, $2)
		RETURNING id
	`, question.Text, question.PublicationDate).Scan(&question.ID)
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to insert question: %w", err)
	}

	return question, nil
}

func (c sqlChoices) ListByQuestion(ctx context.Context, questionID int64) ([]models.Choice, error) {
	rows, err := c.s.db.QueryContext(ctx, `
		SELECT id, question_id, choice_text, votes
		FROM choice
		WHERE question_id = $1
		ORDER BY id
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query choices: %w", err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var choice models.Choice
		if err := rows.Scan(&choice.ID, &choice.QuestionID, &choice.Text, &choice.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices = append(choices, choice)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate choices: %w", err)
	}

	return choices, nil
}

func (c sqlChoices) Create(ctx context.Context, questionID int64, text string) (models.Choice, error) {
	text, err := validText(text)
	if err != nil {
		return models.Choice{}, err
	}

	tx, err := c.s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Choice{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM question WHERE id = $1)
	`, questionID).Scan(&exists)
	if err != nil {
		return models.Choice{}, fmt.Errorf("failed to check question: %w", err)
	}
	if !exists {
		return models.Choice{}, ErrNotFound
	}

	choice := models.Choice{QuestionID: questionID, Text: text}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO choice (question_id, choice_text, votes)
		VALUES ($1, $2, 0)
		RETURNING id
	`, questionID, text).Scan(&choice.ID)
	if err != nil {
		return models.Choice{}, fmt.Errorf("failed to insert choice: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Choice{}, fmt.Errorf("failed to commit choice: %w", err)
	}

	return choice, nil
}

func (c sqlChoices) IncrementVote(ctx context.Context, questionID, choiceID int64) error {
	// Single statement so concurrent votes never lose an increment
	res, err := c.s.db.ExecContext(ctx, `
		UPDATE choice
		SET votes = votes + 1
		WHERE id = $1 AND question_id = $2
	`, choiceID, questionID)
	if err != nil {
		return fmt.Errorf("failed to increment vote: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
