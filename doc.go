// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the polls server.

Users see the latest published questions, vote on one of a question's
choices and look at the results.

# Starting the Server

With no configuration the server uses a local sqlite file:

	go run .

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Load some questions on startup:

	go run . -fixtures fixtures/testdata/polls.yaml

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): Connection string (default: file:polls.db)
  - IP_HASH_SALT (-ip-salt): Salt for hashed client IPs in vote logs
  - POLLS_FIXTURES (-fixtures): YAML fixtures file

A .env file in the working directory is read as well.

# Architecture

  - handlers: Index, Detail, Results and Vote pages
  - store: Question queries and the vote increment
  - templates: Embedded HTML pages
  - router: Route definitions using chi
  - middleware: Request logging, CORS, JSON helpers
  - models: Domain types and view models
  - fixtures: YAML data loading
  - auth: IP hashing
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
