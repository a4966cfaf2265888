// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Drivers

Open picks the driver from the configured database type:

  - postgres: github.com/lib/pq
  - sqlite: modernc.org/sqlite (pure Go, foreign keys enabled, one connection)

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - question: prompt text and publication date
  - choice: answers with a non-negative vote tally

# Relationships

	question 1──* choice

choice.question_id uses ON DELETE CASCADE.

# Indexes

  - question.pub_date (latest questions listing)
  - choice.question_id
*/
package db
