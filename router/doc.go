// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the polls app.

# Route Registration

NewRouter creates a chi router with all endpoints:

	r := router.NewRouter(db, cfg, pages)

Middleware, outermost first: chi's Recoverer, request logging, CORS.

# Endpoints

Health:

	GET /health

Polls:

	GET  /polls/                 - Latest questions
	GET  /polls/{id}/            - Question with voting form
	GET  /polls/{id}/results/    - Vote tallies
	POST /polls/{id}/vote/       - Cast a vote (form field "choice")

Root:

	GET /                        - Redirects to /polls/

Trailing slashes are part of the paths.
*/
package router
