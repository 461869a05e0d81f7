// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides the QuestionStore and ChoiceStore repositories.

Two implementations are available:

  - SQLStore: database/sql backed, works with PostgreSQL (lib/pq) and SQLite (modernc.org/sqlite)
  - MemoryStore: process-local maps, for DATABASE_TYPE=memory and tests

Both hand out the two interfaces separately:

	s := store.NewSQLStore(conn)
	questions, choices := s.Questions(), s.Choices()

Lookups that miss return ErrNotFound; empty text returns ErrEmptyText.
*/
package store
