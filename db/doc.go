// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates its schema.

# Drivers

	postgres  github.com/lib/pq
	sqlite    modernc.org/sqlite (pure Go, default)

Open picks the driver from Config.DatabaseType, pings, and creates the schema:

	conn, err := db.Open(cfg)

SQLite connections get foreign keys enabled and are limited to one open
connection.

# Tables

	question 1──* choice

  - question: question_text, publication_date
  - choice: question_id, choice_text, votes

Deleting a question cascades to its choices. CreateSchema is safe to call
multiple times - it uses IF NOT EXISTS for all tables and indexes.
*/
package db
