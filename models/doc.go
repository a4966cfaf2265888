// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain types and view models for the polls app.

# Domain Types

  - Question: prompt text and publication date
  - Choice: one answer to a question with its vote tally
  - QuestionWithChoices: a question together with its choices, ordered by id

A question is visible once its publication date has passed:

	if q.Published(now) { ... }

WasPublishedRecently is true only for questions published within the
last 24 hours. Future questions are never recent.

# View Models

Data handed to templates (or encoded as JSON):

  - IndexView: latest_questions
  - DetailView: question, error_message
  - ResultsView: question, total_votes
  - ErrorResponse: error, message

# Constants

	LatestQuestionsLimit = 5
	MsgNoPolls           = "No polls are available."
	MsgNoChoiceSelected  = "You didn't select a choice."
*/
package models
