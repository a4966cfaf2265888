// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the data access layer for questions and choices.

# Reading Questions

	s := store.New(conn)
	latest, err := s.ListVisible(ctx, now, models.LatestQuestionsLimit)
	q, err := s.GetVisible(ctx, id, now) // ErrNotFound if missing or unpublished
	q, err := s.GetAny(ctx, id)          // ignores the publication date

A question dated in the future is indistinguishable from a missing one
through ListVisible and GetVisible.

# Voting

	err := s.CastVote(ctx, questionID, choiceID)

The tally is incremented by a single UPDATE statement, so concurrent
votes never overwrite each other. Choice ids that do not belong to the
question are rejected with ErrChoiceNotFound.

ParseChoiceID reads the "choice" form field and reports
ErrChoiceNotSelected when it is missing.

# Creating Data

CreateQuestion and AddChoice are used by fixtures and tests only; there is
no HTTP surface for them.
*/
package store
