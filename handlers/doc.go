// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the polls pages.

# Handler

PollHandler depends on a Questions store, the config and the parsed
templates:

	pollHandler := handlers.NewPollHandler(store.New(db), cfg, pages)

# Pages

	GET  /polls/               → Index   (latest five published questions)
	GET  /polls/{id}/          → Detail  (voting form)
	GET  /polls/{id}/results/  → Results (tallies)
	POST /polls/{id}/vote/     → Vote

Detail and Results only show questions whose publication date has
passed; anything else is a 404, exactly like a missing question.

# Voting

Vote reads the "choice" form field. A missing, unknown or foreign choice
re-renders the detail page (200) with "You didn't select a choice." and
changes nothing. A valid vote increments the tally and redirects (302) to
the results page so reloading does not vote again.

# Rendering

Every page can be requested as JSON with Accept: application/json or
?format=json. The JSON body is the view model the template would get.
Storage failures are logged and answered with a 500.
*/
package handlers
