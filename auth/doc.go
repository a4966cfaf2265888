// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the small amount of cryptography the app needs.

# IP Hashing

Votes are logged with a salted hash of the client address instead of the
raw IP:

	ipHash := auth.HashIP(middleware.GetClientIP(r), cfg.IPHashSalt)

The same IP with the same salt always yields the same 16 hex characters.

# Salts

GenerateSalt returns 192 random bits, URL-safe base64 encoded. cliparse
uses it when no IP_HASH_SALT is configured.
*/
package auth
