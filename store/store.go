// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/polls/models"
)

var (
	ErrNotFound          = errors.New("question not found")
	ErrChoiceNotSelected = errors.New("no choice selected")
	ErrChoiceNotFound    = errors.New("choice not found")
)

// Store reads questions and records votes.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// ListVisible returns up to limit questions published at or before now,
// most recent first.
func (s *Store) ListVisible(ctx context.Context, now time.Time, limit int) ([]models.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question_text, pub_date
		FROM question
		WHERE pub_date <= $1
		ORDER BY pub_date DESC, id DESC
		LIMIT $2
	`, now.UTC(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.QuestionText, &q.PubDate); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		q.PubDate = q.PubDate.UTC()
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate questions: %w", err)
	}

	return questions, nil
}

// GetVisible returns the question with its choices if it is published at now.
// Unpublished questions are reported as ErrNotFound.
func (s *Store) GetVisible(ctx context.Context, id int64, now time.Time) (models.QuestionWithChoices, error) {
	q, err := s.GetAny(ctx, id)
	if err != nil {
		return models.QuestionWithChoices{}, err
	}
	if !q.Published(now) {
		return models.QuestionWithChoices{}, ErrNotFound
	}
	return q, nil
}

// GetAny returns the question with its choices regardless of publication date.
func (s *Store) GetAny(ctx context.Context, id int64) (models.QuestionWithChoices, error) {
	var q models.QuestionWithChoices
	err := s.db.QueryRowContext(ctx, `
		SELECT id, question_text, pub_date
		FROM question
		WHERE id = $1
	`, id).Scan(&q.ID, &q.QuestionText, &q.PubDate)

	if errors.Is(err, sql.ErrNoRows) {
		return models.QuestionWithChoices{}, ErrNotFound
	}
	if err != nil {
		return models.QuestionWithChoices{}, fmt.Errorf("failed to query question: %w", err)
	}
	q.PubDate = q.PubDate.UTC()

	q.Choices, err = s.choices(ctx, q.ID)
	if err != nil {
		return models.QuestionWithChoices{}, err
	}

	return q, nil
}

func (s *Store) choices(ctx context.Context, questionID int64) ([]models.Choice, error) {
	rows, err := s.db.QueryContext(ctx, `
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
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.ChoiceText, &c.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate choices: %w", err)
	}

	return choices, nil
}

// CreateQuestion inserts a question and returns its id.
func (s *Store) CreateQuestion(ctx context.Context, text string, pubDate time.Time) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO question (question_text, pub_date)
		VALUES ($1, $2)
		RETURNING id
	`, text, pubDate.UTC()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert question: %w", err)
	}
	return id, nil
}

// AddChoice inserts a choice with zero votes under questionID.
func (s *Store) AddChoice(ctx context.Context, questionID int64, text string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO choice (question_id, choice_text, votes)
		VALUES ($1, $2, 0)
		RETURNING id
	`, questionID, text).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert choice: %w", err)
	}
	return id, nil
}
