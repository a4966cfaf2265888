package models

import (
	"testing"
	"time"
)

func TestWasPublishedRecently(t *testing.T) {
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		pubDate time.Time
		want    bool
	}{
		{"future question", now.AddDate(0, 0, 1), false},
		{"one second in the future", now.Add(time.Second), false},
		{"old question", now.Add(-(24*time.Hour + time.Second)), false},
		{"thirty days old", now.AddDate(0, 0, -30), false},
		{"recent question", now.Add(-(23*time.Hour + 59*time.Minute + 59*time.Second)), true},
		{"exactly one day old", now.Add(-24 * time.Hour), true},
		{"published now", now, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Question{PubDate: tt.pubDate}
			if got := q.WasPublishedRecently(now); got != tt.want {
				t.Errorf("WasPublishedRecently() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPublished(t *testing.T) {
	now := time.Now()

	if !(Question{PubDate: now.AddDate(0, 0, -30)}).Published(now) {
		t.Error("Expected past question to be published")
	}
	if !(Question{PubDate: now}).Published(now) {
		t.Error("Expected question dated now to be published")
	}
	if (Question{PubDate: now.Add(time.Minute)}).Published(now) {
		t.Error("Expected future question to be unpublished")
	}
}

func TestQuestionWithChoices(t *testing.T) {
	q := QuestionWithChoices{
		Question: Question{ID: 1},
		Choices: []Choice{
			{ID: 3, QuestionID: 1, Votes: 2},
			{ID: 4, QuestionID: 1, Votes: 5},
		},
	}

	if got := q.TotalVotes(); got != 7 {
		t.Errorf("TotalVotes() = %d, want 7", got)
	}
	if (QuestionWithChoices{}).TotalVotes() != 0 {
		t.Error("Expected 0 votes without choices")
	}
}
