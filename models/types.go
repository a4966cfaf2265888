package models

import "time"

// Presentation constants
const (
	LatestQuestionsLimit = 5

	MsgNoPolls          = "No polls are available."
	MsgNoChoiceSelected = "You didn't select a choice."
	MsgQuestionNotFound = "Question doesn't exist"
)

// RecentWindow is how far back a question still counts as recently published.
const RecentWindow = 24 * time.Hour

// Domain types

type Question struct {
	ID           int64     `json:"id"`
	QuestionText string    `json:"question_text"`
	PubDate      time.Time `json:"pub_date"`
}

// WasPublishedRecently reports whether the question was published within the
// last day. Questions dated in the future are not recent.
func (q Question) WasPublishedRecently(now time.Time) bool {
	return !q.PubDate.Before(now.Add(-RecentWindow)) && !q.PubDate.After(now)
}

// Published reports whether the question is visible at now.
func (q Question) Published(now time.Time) bool {
	return !q.PubDate.After(now)
}

type Choice struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	ChoiceText string `json:"choice_text"`
	Votes      int    `json:"votes"`
}

type QuestionWithChoices struct {
	Question
	Choices []Choice `json:"choices"`
}

// TotalVotes sums the tallies of every choice.
func (q QuestionWithChoices) TotalVotes() int {
	total := 0
	for _, c := range q.Choices {
		total += c.Votes
	}
	return total
}

// View models

type IndexView struct {
	LatestQuestions []Question `json:"latest_questions"`
}

type DetailView struct {
	Question     QuestionWithChoices `json:"question"`
	ErrorMessage string              `json:"error_message,omitempty"`
}

type ResultsView struct {
	Question   QuestionWithChoices `json:"question"`
	TotalVotes int                 `json:"total_votes"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
