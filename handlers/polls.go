// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/danielhkuo/polls/auth"
	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/store"
	"github.com/danielhkuo/polls/templates"
)

// Questions is the storage the poll pages need.
type Questions interface {
	ListVisible(ctx context.Context, now time.Time, limit int) ([]models.Question, error)
	GetVisible(ctx context.Context, id int64, now time.Time) (models.QuestionWithChoices, error)
	GetAny(ctx context.Context, id int64) (models.QuestionWithChoices, error)
	CastVote(ctx context.Context, questionID, choiceID int64) error
}

type PollHandler struct {
	questions Questions
	cfg       cliparse.Config
	pages     *templates.Set
	now       func() time.Time
}

func NewPollHandler(questions Questions, cfg cliparse.Config, pages *templates.Set) *PollHandler {
	return &PollHandler{questions: questions, cfg: cfg, pages: pages, now: time.Now}
}

// ResultsURL is where a successful vote redirects to
func ResultsURL(questionID int64) string {
	return fmt.Sprintf("/polls/%d/results/", questionID)
}

// Index handles GET /polls/
func (h *PollHandler) Index(w http.ResponseWriter, r *http.Request) {
	latest, err := h.questions.ListVisible(r.Context(), h.now(), models.LatestQuestionsLimit)
	if err != nil {
		slog.Error("failed to list questions", "error", err)
		h.serverError(w, r)
		return
	}

	h.render(w, r, http.StatusOK, templates.Index, models.IndexView{LatestQuestions: latest})
}

// Detail handles GET /polls/{id}/
// Questions published in the future are reported as missing
func (h *PollHandler) Detail(w http.ResponseWriter, r *http.Request) {
	q, ok := h.visibleQuestion(w, r)
	if !ok {
		return
	}

	h.render(w, r, http.StatusOK, templates.Detail, models.DetailView{Question: q})
}

// Results handles GET /polls/{id}/results/
func (h *PollHandler) Results(w http.ResponseWriter, r *http.Request) {
	q, ok := h.visibleQuestion(w, r)
	if !ok {
		return
	}

	h.render(w, r, http.StatusOK, templates.Results, models.ResultsView{
		Question:   q,
		TotalVotes: q.TotalVotes(),
	})
}

// Vote handles POST /polls/{id}/vote/
// The target question is looked up without the publication filter.
func (h *PollHandler) Vote(w http.ResponseWriter, r *http.Request) {
	questionID, ok := h.questionID(w, r)
	if !ok {
		return
	}

	q, err := h.questions.GetAny(r.Context(), questionID)
	if errors.Is(err, store.ErrNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err, "question_id", questionID)
		h.serverError(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		slog.Warn("failed to parse vote form", "error", err, "question_id", questionID)
	}

	choiceID, err := store.ParseChoiceID(r.PostForm)
	if err == nil {
		err = h.questions.CastVote(r.Context(), q.ID, choiceID)
	}

	switch {
	case errors.Is(err, store.ErrChoiceNotSelected), errors.Is(err, store.ErrChoiceNotFound):
		slog.Info("vote rejected", "question_id", q.ID, "reason", err)
		h.render(w, r, http.StatusOK, templates.Detail, models.DetailView{
			Question:     q,
			ErrorMessage: models.MsgNoChoiceSelected,
		})
		return
	case err != nil:
		slog.Error("failed to cast vote", "error", err, "question_id", q.ID, "choice_id", choiceID)
		h.serverError(w, r)
		return
	}

	slog.Info("vote cast",
		"question_id", q.ID,
		"choice_id", choiceID,
		"ip_hash", auth.HashIP(middleware.GetClientIP(r), h.cfg.IPHashSalt),
		"request_id", middleware.RequestID(r.Context()),
	)

	// Redirect after a successful POST so a reload does not vote twice
	http.Redirect(w, r, ResultsURL(q.ID), http.StatusFound)
}

// visibleQuestion resolves {id} to a published question, writing a 404 or
// 500 response when it cannot.
func (h *PollHandler) visibleQuestion(w http.ResponseWriter, r *http.Request) (models.QuestionWithChoices, bool) {
	questionID, ok := h.questionID(w, r)
	if !ok {
		return models.QuestionWithChoices{}, false
	}

	q, err := h.questions.GetVisible(r.Context(), questionID, h.now())
	if errors.Is(err, store.ErrNotFound) {
		h.notFound(w, r)
		return models.QuestionWithChoices{}, false
	}
	if err != nil {
		slog.Error("failed to query question", "error", err, "question_id", questionID)
		h.serverError(w, r)
		return models.QuestionWithChoices{}, false
	}

	return q, true
}

// questionID parses the {id} path parameter. Anything that is not a
// positive integer cannot name a question and is a 404.
func (h *PollHandler) questionID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.notFound(w, r)
		return 0, false
	}
	return id, true
}
