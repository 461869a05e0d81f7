// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Each request gets a UUID request ID (reused from X-Request-ID when the
caller sends a valid one). It is stored in the request context, echoed in
the X-Request-ID response header and attached to the start and completion
log lines together with method, path, status and duration_ms.

	id := middleware.RequestID(r.Context())

# Admin Guard

	mux.HandleFunc("POST /admin/questions",
		middleware.WithLogging(middleware.RequireAdminKey(cfg.AdminKey, h.CreateQuestion)))

Responds 401 when X-Admin-Key is missing or wrong.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows GET, POST and OPTIONS with headers Content-Type, X-Admin-Key and
X-Request-ID.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Handles X-Forwarded-For and X-Real-IP; used in request logs.
*/
package middleware
