// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/store"
)

// SetupTestDB creates a fresh sqlite database with the full schema.
// The file lives in the test's temp dir and disappears with it.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "polls_test.db")
	conn, err := db.Open(cliparse.DatabaseSQLite, "file:"+path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, cliparse.DatabaseSQLite); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// DB bundles a test database with shorthand fixtures bound to the test
type DB struct {
	*sql.DB
	t *testing.T
}

// NewDB is SetupTestDB wrapped in a DB
func NewDB(t *testing.T) *DB {
	t.Helper()
	return &DB{DB: SetupTestDB(t), t: t}
}

// Question creates a question published days from now
func (d *DB) Question(text string, days int) int64 {
	d.t.Helper()
	return CreateTestQuestion(d.t, d.DB, text, days)
}

// Choice adds a choice to a question
func (d *DB) Choice(questionID int64, text string) int64 {
	d.t.Helper()
	return AddTestChoice(d.t, d.DB, questionID, text)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  "file::memory:",
		DatabaseType: cliparse.DatabaseSQLite,
		IPHashSalt:   "test-ip-salt",
	}
}

// CreateTestQuestion creates a question published days from now
// (negative for the past, positive for the future) and returns its ID.
func CreateTestQuestion(t *testing.T, conn *sql.DB, text string, days int) int64 {
	t.Helper()
	return CreateTestQuestionAt(t, conn, text, time.Now().AddDate(0, 0, days))
}

// CreateTestQuestionAt creates a question with an exact publication date.
func CreateTestQuestionAt(t *testing.T, conn *sql.DB, text string, pubDate time.Time) int64 {
	t.Helper()

	id, err := store.New(conn).CreateQuestion(context.Background(), text, pubDate)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return id
}

// AddTestChoice adds a choice to a question and returns the choice ID
func AddTestChoice(t *testing.T, conn *sql.DB, questionID int64, text string) int64 {
	t.Helper()

	id, err := store.New(conn).AddChoice(context.Background(), questionID, text)
	if err != nil {
		t.Fatalf("Failed to create test choice: %v", err)
	}

	return id
}

// GetVotes reads the current tally of a choice straight from the database
func GetVotes(t *testing.T, conn *sql.DB, choiceID int64) int {
	t.Helper()

	var votes int
	err := conn.QueryRow(`SELECT votes FROM choice WHERE id = $1`, choiceID).Scan(&votes)
	if err != nil {
		t.Fatalf("Failed to read votes: %v", err)
	}

	return votes
}

// MakeRequest creates an HTTP test request. Pass acceptJSON to ask for the
// JSON rendering of the view model.
func MakeRequest(method, path string, acceptJSON bool) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	if acceptJSON {
		req.Header.Set("Accept", "application/json")
	}
	return req
}

// MakeFormRequest creates a form-encoded POST request
func MakeFormRequest(path string, form url.Values, acceptJSON bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if acceptJSON {
		req.Header.Set("Accept", "application/json")
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertContains checks that the response body contains text
func AssertContains(t *testing.T, w *httptest.ResponseRecorder, text string) {
	t.Helper()
	if !strings.Contains(w.Body.String(), text) {
		t.Errorf("Expected body to contain %q. Body: %s", text, w.Body.String())
	}
}
