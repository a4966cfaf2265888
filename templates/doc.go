// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package templates embeds and parses the HTML pages.

Every page is parsed together with html/base.html and executed as a whole
document:

	set, err := templates.Load()
	err = set.Lookup(templates.Detail).Execute(w, view)

Pages and their data:

  - index: models.IndexView
  - detail: models.DetailView
  - results: models.ResultsView
  - 404: the message string

Template functions: ago (relative time), comma (thousands separators)
and plural (vote/votes) come from go-humanize; now is the render time,
used to flag questions published in the last day.
*/
package templates
