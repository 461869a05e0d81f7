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

	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/publication"
	"github.com/danielhkuo/polls/store"
)

// errInvalidChoice means the submitted choice is missing, malformed or
// belongs to another question
var errInvalidChoice = errors.New("invalid choice")

type VotingHandler struct {
	questions store.QuestionStore
	choices   store.ChoiceStore
	clock     publication.Clock
}

func NewVotingHandler(questions store.QuestionStore, choices store.ChoiceStore, clock publication.Clock) *VotingHandler {
	return &VotingHandler{questions: questions, choices: choices, clock: clock}
}

// castVote adds one vote to choiceID under q, or returns errInvalidChoice
func (h *VotingHandler) castVote(ctx context.Context, q models.Question, choiceID int64) error {
	if choiceID <= 0 {
		return errInvalidChoice
	}

	err := h.choices.IncrementVote(ctx, q.ID, choiceID)
	if store.IsNotFound(err) {
		return errInvalidChoice
	}
	if err != nil {
		return err
	}

	slog.Info("vote recorded", "question_id", q.ID, "choice_id", choiceID)
	return nil
}

// Vote handles POST /polls/{id}/vote/
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	q, err := findPublished(r.Context(), h.questions, r.PathValue("id"), h.clock.Now())
	if store.IsNotFound(err) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// Missing or non-numeric values fall through as 0
	choiceID, _ := strconv.ParseInt(r.PostFormValue("choice"), 10, 64)

	err = h.castVote(r.Context(), q, choiceID)
	if errors.Is(err, errInvalidChoice) {
		h.redisplay(w, r, q)
		return
	}
	if err != nil {
		slog.Error("failed to record vote", "error", err, "question_id", q.ID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// Redirect after POST so a reload does not vote twice
	http.Redirect(w, r, fmt.Sprintf("/polls/%d/results/", q.ID), http.StatusSeeOther)
}

// redisplay renders the detail page again with the inline error message
func (h *VotingHandler) redisplay(w http.ResponseWriter, r *http.Request, q models.Question) {
	choices, err := h.choices.ListByQuestion(r.Context(), q.ID)
	if err != nil {
		slog.Error("failed to query choices", "error", err, "question_id", q.ID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	renderPage(w, http.StatusBadRequest, "detail.html", detailPage{
		Question:     q,
		Choices:      choices,
		ErrorMessage: models.NoChoiceSelected,
	})
}

// SubmitVote handles POST /api/questions/{id}/vote
func (h *VotingHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	q, err := findPublished(r.Context(), h.questions, r.PathValue("id"), h.clock.Now())
	if store.IsNotFound(err) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	err = h.castVote(r.Context(), q, req.ChoiceID)
	if errors.Is(err, errInvalidChoice) {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.NoChoiceSelected)
		return
	}
	if err != nil {
		slog.Error("failed to record vote", "error", err, "question_id", q.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	choices, err := h.choices.ListByQuestion(r.Context(), q.ID)
	if err != nil {
		slog.Error("failed to query choices", "error", err, "question_id", q.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Question:   q,
		Choices:    choices,
		TotalVotes: models.TotalVotes(choices),
	})
}
