// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/publication"
	"github.com/danielhkuo/polls/store"
)

// PollHandler serves the admin API. Routes are expected to sit behind
// middleware.RequireAdminKey.
type PollHandler struct {
	questions store.QuestionStore
	choices   store.ChoiceStore
	clock     publication.Clock
}

func NewPollHandler(questions store.QuestionStore, choices store.ChoiceStore, clock publication.Clock) *PollHandler {
	return &PollHandler{questions: questions, choices: choices, clock: clock}
}

// CreateQuestion handles POST /admin/questions
func (h *PollHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	pubDate := h.clock.Now()
	if req.PublicationDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.PublicationDate)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "publication_date must be RFC3339")
			return
		}
		pubDate = parsed
	}

	q, err := h.questions.Create(r.Context(), req.Text, pubDate)
	if errors.Is(err, store.ErrEmptyText) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "text is required")
		return
	}
	if err != nil {
		slog.Error("failed to create question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	slog.Info("question created", "question_id", q.ID, "publication_date", q.PublicationDate)

	middleware.JSONResponse(w, http.StatusCreated, q)
}

// AddChoice handles POST /admin/questions/{id}/choices
// Choices may be added before the question is published.
func (h *PollHandler) AddChoice(w http.ResponseWriter, r *http.Request) {
	questionID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	var req models.CreateChoiceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	c, err := h.choices.Create(r.Context(), questionID, req.Text)
	switch {
	case errors.Is(err, store.ErrEmptyText):
		middleware.ErrorResponse(w, http.StatusBadRequest, "text is required")
		return
	case store.IsNotFound(err):
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	case err != nil:
		slog.Error("failed to create choice", "error", err, "question_id", questionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create choice")
		return
	}

	slog.Info("choice created", "question_id", questionID, "choice_id", c.ID)

	middleware.JSONResponse(w, http.StatusCreated, c)
}
