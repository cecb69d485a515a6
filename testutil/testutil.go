// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/media-ranker/auth"
	"github.com/danielhkuo/media-ranker/cliparse"
	"github.com/danielhkuo/media-ranker/db"
	"github.com/danielhkuo/media-ranker/models"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. The database is named after the test so parallel tests in the
// same package don't share state; it vanishes when the last connection
// closes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	conn, err := db.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// One writer at a time; sqlite serializes anyway and this keeps the
	// shared in-memory database alive for the whole test
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3314,
		DatabaseURL:  "file:media_ranker_test?mode=memory",
		DatabaseType: "sqlite",
	}
}

// ValidWorkFields returns a creation payload that passes every validation
func ValidWorkFields() models.WorkFields {
	return models.WorkFields{
		Title:           "Light in the Attic",
		Creator:         "Shell Silverstein",
		Description:     "Childrens classic poems",
		Category:        models.CategoryBook,
		PublicationYear: 1995,
	}
}

// CreateTestUser inserts a user with the given username and returns its ID.
// The password for every test user is "devpassword".
func CreateTestUser(t *testing.T, conn *sql.DB, username string) string {
	t.Helper()

	userID, _ := auth.GenerateID(8)
	digest, err := auth.HashPassword("devpassword")
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO users (id, username, password_digest, created_at)
		VALUES ($1, $2, $3, $4)
	`, userID, username, digest, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return userID
}

// CreateTestWork inserts a work and returns its ID
func CreateTestWork(t *testing.T, conn *sql.DB, category, title string) string {
	t.Helper()

	workID, _ := auth.GenerateID(8)
	_, err := conn.Exec(`
		INSERT INTO works (id, title, creator, description, category, publication_year, created_at)
		VALUES ($1, $2, 'Test Creator', 'A test work', $3, 1999, $4)
	`, workID, title, category, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test work: %v", err)
	}

	return workID
}

// CreateTestVote inserts a vote row for the pair
func CreateTestVote(t *testing.T, conn *sql.DB, userID, workID string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO votes (user_id, work_id, created_at)
		VALUES ($1, $2, $3)
	`, userID, workID, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return count
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

// AssertRedirect checks for a 302 to the expected location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusFound {
		t.Errorf("Expected status 302, got %d. Body: %s", w.Code, w.Body.String())
		return
	}
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %q, got %q", location, got)
	}
}
