// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/handlers"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/publication"
	"github.com/danielhkuo/polls/store"
)

func NewRouter(questions store.QuestionStore, choices store.ChoiceStore, cfg cliparse.Config, clock publication.Clock) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(questions, choices, clock)
	votingHandler := handlers.NewVotingHandler(questions, choices, clock)
	resultsHandler := handlers.NewResultsHandler(questions, choices, cfg, clock)

	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdminKey(cfg.AdminKey, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Pages
	mux.HandleFunc("GET /polls/{$}", middleware.WithLogging(resultsHandler.Index))
	mux.HandleFunc("GET /polls/{id}/{$}", middleware.WithLogging(resultsHandler.Detail))
	mux.HandleFunc("GET /polls/{id}/results/{$}", middleware.WithLogging(resultsHandler.Results))
	mux.HandleFunc("POST /polls/{id}/vote/{$}", middleware.WithLogging(votingHandler.Vote))

	// JSON API
	mux.HandleFunc("GET /api/questions", middleware.WithLogging(resultsHandler.ListQuestions))
	mux.HandleFunc("GET /api/questions/{id}", middleware.WithLogging(resultsHandler.GetQuestion))
	mux.HandleFunc("GET /api/questions/{id}/results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("POST /api/questions/{id}/vote", middleware.WithLogging(votingHandler.SubmitVote))

	// Admin
	mux.HandleFunc("POST /admin/questions", admin(pollHandler.CreateQuestion))
	mux.HandleFunc("POST /admin/questions/{id}/choices", admin(pollHandler.AddChoice))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/polls/", http.StatusFound)
	})

	return mux
}
