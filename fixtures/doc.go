// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package fixtures loads questions and choices from a YAML file.

There is no HTTP surface for creating polls; fixtures are how data gets
into a fresh database:

	questions:
	  - question_text: "What's up?"
	    pub_date: 2024-03-01T09:00:00Z
	    choices: [Not much, The sky]
	  - question_text: "Coming soon"
	    published: 48h
	    choices: [Sure, Later]

pub_date is absolute. published is an offset from load time (negative for
the past). With neither, the question is published when loaded.

	f, err := fixtures.Load(path)
	n, err := fixtures.Apply(ctx, store.New(db), f, time.Now())
*/
package fixtures
