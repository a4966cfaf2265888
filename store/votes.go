// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// CastVote adds one vote to choiceID. The increment happens in a single
// UPDATE so concurrent votes are never lost. A choice that does not exist
// or belongs to another question yields ErrChoiceNotFound.
func (s *Store) CastVote(ctx context.Context, questionID, choiceID int64) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE choice
		SET votes = votes + 1
		WHERE id = $1 AND question_id = $2
	`, choiceID, questionID)
	if err != nil {
		return fmt.Errorf("failed to record vote: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrChoiceNotFound
	}

	return nil
}

// ParseChoiceID extracts the "choice" field from a submitted form.
func ParseChoiceID(form url.Values) (int64, error) {
	raw := strings.TrimSpace(form.Get("choice"))
	if raw == "" {
		return 0, ErrChoiceNotSelected
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrChoiceNotFound
	}

	return id, nil
}
