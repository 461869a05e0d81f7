// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the polls site.

NewRouter wires every handler to a Go 1.22 pattern on an http.ServeMux:

	mux := router.NewRouter(questions, choices, cfg, publication.SystemClock{})

Routes:

	GET  /health
	GET  /                          redirect to /polls/
	GET  /polls/
	GET  /polls/{id}/
	GET  /polls/{id}/results/
	POST /polls/{id}/vote/
	GET  /api/questions
	GET  /api/questions/{id}
	GET  /api/questions/{id}/results
	POST /api/questions/{id}/vote
	POST /admin/questions               (X-Admin-Key)
	POST /admin/questions/{id}/choices  (X-Admin-Key)

All routes except /health are wrapped with request logging.
*/
package router
