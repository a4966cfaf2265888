// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/templates"
)

// render writes the view model as JSON or as the named HTML page.
func (h *PollHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, data interface{}) {
	if middleware.WantsJSON(r) {
		middleware.JSONResponse(w, status, data)
		return
	}

	tmpl := h.pages.Lookup(page)
	if tmpl == nil {
		slog.Error("unknown template", "page", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// Render into a buffer so a template error can still become a 500
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		slog.Error("failed to render template", "error", err, "page", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func (h *PollHandler) notFound(w http.ResponseWriter, r *http.Request) {
	if middleware.WantsJSON(r) {
		middleware.ErrorResponse(w, http.StatusNotFound, models.MsgQuestionNotFound)
		return
	}
	h.render(w, r, http.StatusNotFound, templates.NotFound, models.MsgQuestionNotFound)
}

func (h *PollHandler) serverError(w http.ResponseWriter, r *http.Request) {
	if middleware.WantsJSON(r) {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
