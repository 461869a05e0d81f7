// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite (default), postgres or memory
  - DatabaseURL: connection string (default file:polls.db for sqlite, required for postgres)
  - AdminKey: Shared secret for the admin API (required)
  - ListLimit: Questions on the index page (default: 5)
  - EnvFile: dotenv file loaded before reading the environment (default: .env)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-limit      Index page size
	-admin-key  Admin API key
	-env        dotenv file, empty to skip

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	LIST_LIMIT    → -limit
	ADMIN_KEY     → -admin-key

CLI flags take precedence over environment variables, and variables already
set in the process take precedence over the dotenv file. A missing dotenv
file is not an error.
*/
package cliparse
