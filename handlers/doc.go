// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the polls site.

# Handler Types

Each handler is a struct holding the stores, config and a clock:

  - ResultsHandler: index, detail and results pages plus their JSON mirrors
  - VotingHandler: vote form and JSON vote submission
  - PollHandler: admin API for creating questions and choices

	resultsHandler := handlers.NewResultsHandler(questions, choices, cfg, publication.SystemClock{})

# Visibility

Every public route resolves the question through the publication policy.
Questions dated after the clock's Now are answered with 404 exactly like
questions that do not exist.

# Pages

HTML templates are embedded from templates/:

	GET  /polls/               → Index   (latest published, newest first)
	GET  /polls/{id}/          → Detail  (choices and vote form)
	GET  /polls/{id}/results/  → Results (tallies)
	POST /polls/{id}/vote/     → Vote    (303 to results, or 400 with inline error)

# JSON API

	GET  /api/questions
	GET  /api/questions/{id}
	GET  /api/questions/{id}/results
	POST /api/questions/{id}/vote      {"choice_id": 3}

# Admin API

Requires the X-Admin-Key header:

	POST /admin/questions               {"text": "...", "publication_date": "RFC3339"}
	POST /admin/questions/{id}/choices  {"text": "..."}
*/
package handlers
