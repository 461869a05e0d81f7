// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the polls server.

Visitors see a list of published poll questions, open one to vote for a
choice, and then see the results. Questions can be scheduled: anything
dated in the future stays hidden until its publication time.

# Starting the Server

	ADMIN_KEY=$(go run . genkey) go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -admin-key ...

# Configuration

  - ADMIN_KEY (-admin-key): Secret for the admin API (required)
  - DATABASE_TYPE (-t): sqlite (default), postgres or memory
  - DATABASE_URL (-d): connection string (default file:polls.db for sqlite)
  - PORT (-p): Server port (default: 3318)
  - LIST_LIMIT (-limit): Questions on the index page (default: 5)

A .env file in the working directory is loaded when present.

# Architecture

  - publication: visibility and "recently published" rules
  - store: QuestionStore and ChoiceStore (SQL and in-memory)
  - handlers: HTML pages, JSON API and admin API
  - router: Route definitions using Go 1.22+ routing
  - middleware: request logging, admin guard, CORS, JSON helpers
  - models: domain, request and response types
  - auth: admin key generation and validation
  - db: driver selection and schema creation
  - cliparse: Configuration parsing
*/
package main
