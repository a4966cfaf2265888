// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package templates

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
)

//go:embed html/*.html
var files embed.FS

// Page names
const (
	Index    = "index"
	Detail   = "detail"
	Results  = "results"
	NotFound = "404"
)

var pages = []string{Index, Detail, Results, NotFound}

// Set holds one parsed template per page, each sharing base.html.
type Set struct {
	pages map[string]*template.Template
}

// Funcs available inside every page
var Funcs = template.FuncMap{
	"ago": func(t time.Time) string {
		return humanize.Time(t)
	},
	"comma": func(n int) string {
		return humanize.Comma(int64(n))
	},
	"now": time.Now,
	"plural": func(n int, singular string) string {
		return english.PluralWord(n, singular, "")
	},
}

// Load parses the embedded pages.
func Load() (*Set, error) {
	set := &Set{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		tmpl, err := template.New("base.html").Funcs(Funcs).ParseFS(files, "html/base.html", "html/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		set.pages[name] = tmpl
	}
	return set, nil
}

// Lookup returns the named page, or nil if it does not exist.
func (s *Set) Lookup(name string) *template.Template {
	return s.pages[name]
}
