// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Connection string (default: file:polls.db for sqlite)
  - DatabaseType: sqlite (default) or postgres
  - IPHashSalt: Salt for hashed client IPs in vote logs
  - FixturesPath: Optional YAML fixtures file loaded at startup

# CLI Flags

	-p         Server port
	-d         Database URL
	-t         Database type
	-ip-salt   IP hash salt
	-fixtures  Fixtures file

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	IP_HASH_SALT   → -ip-salt
	POLLS_FIXTURES → -fixtures

A .env file in the working directory is loaded before the lookup.
CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - PORT is not a number
  - the database type is neither sqlite nor postgres
  - postgres is selected without a DATABASE_URL

When no salt is configured a random one is generated for the process.
*/
package cliparse
