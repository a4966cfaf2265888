// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap the router with request logging:

	r.Use(middleware.WithLogging)

Logs request start (method, path, remote) and completion (status,
duration_ms). Each request gets an id (uuid, or the incoming X-Request-ID)
that is logged, echoed in the response header and available to handlers:

	id := middleware.RequestID(r.Context())

# CORS Middleware

Lets browser frontends read the JSON views:

	r.Use(middleware.CORS)

# Content Negotiation

WantsJSON is true for Accept: application/json or ?format=json. Handlers
use it to choose between the HTML template and the JSON view model.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "message")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Votes log a salted hash of it, never the address itself.
*/
package middleware
