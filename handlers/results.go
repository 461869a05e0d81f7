// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/publication"
	"github.com/danielhkuo/polls/store"
)

type ResultsHandler struct {
	questions store.QuestionStore
	choices   store.ChoiceStore
	cfg       cliparse.Config
	clock     publication.Clock
}

func NewResultsHandler(questions store.QuestionStore, choices store.ChoiceStore, cfg cliparse.Config, clock publication.Clock) *ResultsHandler {
	return &ResultsHandler{questions: questions, choices: choices, cfg: cfg, clock: clock}
}

// findPublished loads a question by its raw path id. Malformed ids, missing
// questions and questions published after now all yield store.ErrNotFound.
func findPublished(ctx context.Context, questions store.QuestionStore, rawID string, now time.Time) (models.Question, error) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return models.Question{}, store.ErrNotFound
	}

	q, err := questions.Find(ctx, id)
	if err != nil {
		return models.Question{}, err
	}

	if !publication.IsPublished(q.PublicationDate, now) {
		return models.Question{}, store.ErrNotFound
	}
	return q, nil
}

func summarize(questions []models.Question, now time.Time) []models.QuestionSummary {
	summaries := make([]models.QuestionSummary, 0, len(questions))
	for _, q := range questions {
		summaries = append(summaries, models.QuestionSummary{
			Question:     q,
			Recent:       publication.IsRecent(q.PublicationDate, now),
			PublishedAgo: humanize.RelTime(q.PublicationDate, now, "ago", "from now"),
		})
	}
	return summaries
}

func (h *ResultsHandler) latest(ctx context.Context) ([]models.QuestionSummary, error) {
	now := h.clock.Now()
	questions, err := h.questions.ListPublished(ctx, now, h.cfg.ListLimit)
	if err != nil {
		return nil, err
	}
	return summarize(questions, now), nil
}

// Index handles GET /polls/
func (h *ResultsHandler) Index(w http.ResponseWriter, r *http.Request) {
	questions, err := h.latest(r.Context())
	if err != nil {
		slog.Error("failed to list questions", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	page := indexPage{Questions: questions}
	if len(questions) == 0 {
		page.Message = models.NoPollsAvailable
	}
	renderPage(w, http.StatusOK, "index.html", page)
}

// Detail handles GET /polls/{id}/
func (h *ResultsHandler) Detail(w http.ResponseWriter, r *http.Request) {
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

	choices, err := h.choices.ListByQuestion(r.Context(), q.ID)
	if err != nil {
		slog.Error("failed to query choices", "error", err, "question_id", q.ID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	renderPage(w, http.StatusOK, "detail.html", detailPage{Question: q, Choices: choices})
}

// Results handles GET /polls/{id}/results/
func (h *ResultsHandler) Results(w http.ResponseWriter, r *http.Request) {
	results, err := h.results(r.Context(), r.PathValue("id"))
	if store.IsNotFound(err) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to load results", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	renderPage(w, http.StatusOK, "results.html", resultsPage(results))
}

func (h *ResultsHandler) results(ctx context.Context, rawID string) (models.ResultsResponse, error) {
	q, err := findPublished(ctx, h.questions, rawID, h.clock.Now())
	if err != nil {
		return models.ResultsResponse{}, err
	}

	choices, err := h.choices.ListByQuestion(ctx, q.ID)
	if err != nil {
		return models.ResultsResponse{}, err
	}

	return models.ResultsResponse{
		Question:   q,
		Choices:    choices,
		TotalVotes: models.TotalVotes(choices),
	}, nil
}

// ListQuestions handles GET /api/questions
func (h *ResultsHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.latest(r.Context())
	if err != nil {
		slog.Error("failed to list questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	resp := models.QuestionListResponse{Questions: questions}
	if len(questions) == 0 {
		resp.Empty = true
		resp.Message = models.NoPollsAvailable
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetQuestion handles GET /api/questions/{id}
func (h *ResultsHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
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

	choices, err := h.choices.ListByQuestion(r.Context(), q.ID)
	if err != nil {
		slog.Error("failed to query choices", "error", err, "question_id", q.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionWithChoices{
		Question: q,
		Choices:  choices,
	})
}

// GetResults handles GET /api/questions/{id}/results
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.results(r.Context(), r.PathValue("id"))
	if store.IsNotFound(err) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to load results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}
