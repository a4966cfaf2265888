// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/danielhkuo/polls/templates"
	"github.com/danielhkuo/polls/testutil"
)

func newTestRouter(t *testing.T, db *sql.DB) chi.Router {
	t.Helper()

	pages, err := templates.Load()
	if err != nil {
		t.Fatalf("Failed to load templates: %v", err)
	}
	return NewRouter(db, testutil.GetTestConfig(), pages)
}

func TestHealthEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := newTestRouter(t, db)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected request id header from logging middleware")
	}
}

func TestRootEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := newTestRouter(t, db)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Errorf("Expected status 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/polls/" {
		t.Errorf("Expected redirect to /polls/, got %s", loc)
	}
}

func TestRouteExistence(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := newTestRouter(t, db)

	// 404 is a valid answer for routes that reach a handler with no data
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/polls/"},
		{"GET", "/polls/1/"},
		{"GET", "/polls/1/results/"},
		{"POST", "/polls/1/vote/"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestSpecificMethodRouting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := newTestRouter(t, db)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"POST to health endpoint", "POST", "/health", http.StatusMethodNotAllowed},
		{"GET to vote endpoint", "GET", "/polls/1/vote/", http.StatusMethodNotAllowed},
		{"POST to detail endpoint", "POST", "/polls/1/", http.StatusMethodNotAllowed},
		{"DELETE on results", "DELETE", "/polls/1/results/", http.StatusMethodNotAllowed},
		{"unknown path", "GET", "/polls/1/admin/", http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected %d for %s %s, got %d", tc.expectedStatus, tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPathParameterExtraction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	id := testutil.CreateTestQuestion(t, db, "routed question", -1)
	mux := newTestRouter(t, db)

	testCases := []struct {
		path   string
		status int
	}{
		{"/polls/" + itoa(id) + "/", http.StatusOK},
		{"/polls/" + itoa(id) + "/results/", http.StatusOK},
		{"/polls/not-a-number/", http.StatusNotFound},
		{"/polls/-1/", http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, tc.status)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := newTestRouter(t, db)

	req := httptest.NewRequest("OPTIONS", "/polls/1/vote/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Expected origin to be echoed, got %q", got)
	}
}
