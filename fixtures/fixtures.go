// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fixtures

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// File is the top level of a fixtures document.
type File struct {
	Questions []Question `yaml:"questions"`
}

// Question describes one question to create. PubDate wins over Published;
// with neither the question is published at load time.
type Question struct {
	QuestionText string        `yaml:"question_text"`
	PubDate      *time.Time    `yaml:"pub_date"`
	Published    time.Duration `yaml:"published"`
	Choices      []string      `yaml:"choices"`
}

// Writer is the part of the store fixtures need.
type Writer interface {
	CreateQuestion(ctx context.Context, text string, pubDate time.Time) (int64, error)
	AddChoice(ctx context.Context, questionID int64, text string) (int64, error)
}

// Load reads and parses a fixtures file.
func Load(path string) (File, error) {
	var f File

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return f, fmt.Errorf("failed to read fixtures file: %w", err)
	}

	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("failed to parse fixtures file: %w", err)
	}

	if err := f.validate(); err != nil {
		return f, err
	}

	return f, nil
}

func (f File) validate() error {
	for i, q := range f.Questions {
		if q.QuestionText == "" {
			return fmt.Errorf("question %d: question_text is required", i+1)
		}
		for j, c := range q.Choices {
			if c == "" {
				return fmt.Errorf("question %d: choice %d is empty", i+1, j+1)
			}
		}
	}
	return nil
}

// PubDateAt resolves the publication date relative to now.
func (q Question) PubDateAt(now time.Time) time.Time {
	if q.PubDate != nil {
		return *q.PubDate
	}
	return now.Add(q.Published)
}

// Apply creates every question and its choices, returning how many
// questions were created.
func Apply(ctx context.Context, w Writer, f File, now time.Time) (int, error) {
	if w == nil {
		return 0, errors.New("fixtures: nil writer")
	}

	created := 0
	for _, q := range f.Questions {
		id, err := w.CreateQuestion(ctx, q.QuestionText, q.PubDateAt(now))
		if err != nil {
			return created, fmt.Errorf("question %q: %w", q.QuestionText, err)
		}
		for _, c := range q.Choices {
			if _, err := w.AddChoice(ctx, id, c); err != nil {
				return created, fmt.Errorf("question %q choice %q: %w", q.QuestionText, c, err)
			}
		}
		created++
	}

	return created, nil
}
