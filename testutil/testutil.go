// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/publication"
	"github.com/danielhkuo/polls/store"
)

// TestAdminKey is the admin key in GetTestConfig
const TestAdminKey = "test-admin-key"

// Now is the fixed time every test clock reports
var Now = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := GetTestConfig()
	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

// SetupTestStores returns SQL-backed stores over a fresh test database
func SetupTestStores(t *testing.T) (store.QuestionStore, store.ChoiceStore) {
	t.Helper()

	s := store.NewSQLStore(SetupTestDB(t))
	return s.Questions(), s.Choices()
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  "file::memory:",
		AdminKey:     TestAdminKey,
		ListLimit:    publication.DefaultLimit,
	}
}

// Clock returns a clock fixed at Now
func Clock() publication.FixedClock {
	return publication.FixedClock{T: Now}
}

// CreateTestQuestion creates a question published the given number of days
// from Now (negative for the past, positive for the future)
func CreateTestQuestion(t *testing.T, questions store.QuestionStore, text string, days int) models.Question {
	t.Helper()

	q, err := questions.Create(context.Background(), text, Now.AddDate(0, 0, days))
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}
	return q
}

// AddTestChoice adds a choice to a question
func AddTestChoice(t *testing.T, choices store.ChoiceStore, questionID int64, text string) models.Choice {
	t.Helper()

	c, err := choices.Create(context.Background(), questionID, text)
	if err != nil {
		t.Fatalf("Failed to create test choice: %v", err)
	}
	return c
}

// VoteCounts returns choice ID -> votes for a question
func VoteCounts(t *testing.T, choices store.ChoiceStore, questionID int64) map[int64]int {
	t.Helper()

	list, err := choices.ListByQuestion(context.Background(), questionID)
	if err != nil {
		t.Fatalf("Failed to list choices: %v", err)
	}

	counts := make(map[int64]int, len(list))
	for _, c := range list {
		counts[c.ID] = c.Votes
	}
	return counts
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates a urlencoded form POST
func MakeFormRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertContains checks that the response body contains text
func AssertContains(t *testing.T, w *httptest.ResponseRecorder, text string) {
	t.Helper()
	if !strings.Contains(w.Body.String(), text) {
		t.Errorf("Expected body to contain %q. Body: %s", text, w.Body.String())
	}
}

// AssertNotContains checks that the response body does not contain text
func AssertNotContains(t *testing.T, w *httptest.ResponseRecorder, text string) {
	t.Helper()
	if strings.Contains(w.Body.String(), text) {
		t.Errorf("Expected body not to contain %q. Body: %s", text, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
