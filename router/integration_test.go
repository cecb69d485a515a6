// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/danielhkuo/media-ranker/middleware"
	"github.com/danielhkuo/media-ranker/models"
	"github.com/danielhkuo/media-ranker/session"
	"github.com/danielhkuo/media-ranker/testutil"
)

// TestFullCatalogWorkflow tests the complete end-to-end workflow:
// 1. Sign up
// 2. Log in
// 3. Create a work
// 4. View and edit it
// 5. Upvote it (twice; the second is a no-op)
// 6. Log out
// 7. Verify the old token no longer grants access
func TestFullCatalogWorkflow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	store := session.NewStore()
	mux := NewRouter(db, store, testutil.GetTestConfig())

	// Step 1: Sign up
	req := testutil.MakeRequest("POST", "/users", models.SignupRequest{
		Username: "alice",
		Password: "devpassword",
	}, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Step 1 - Signup failed: %d - %s", w.Code, w.Body.String())
	}

	// Step 2: Log in
	req = testutil.MakeRequest("POST", "/login", models.LoginRequest{
		Username: "alice",
		Password: "devpassword",
	}, nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 2 - Login failed: %d - %s", w.Code, w.Body.String())
	}

	var loginResp models.LoginResponse
	json.NewDecoder(w.Body).Decode(&loginResp)
	if loginResp.Token == "" {
		t.Fatal("Step 2 - Missing session token")
	}
	authed := map[string]string{"X-Session-Token": loginResp.Token}
	t.Logf("Step 2 - Logged in as %s", loginResp.UserID)

	// Step 3: Create a work
	req = testutil.MakeRequest("POST", "/works", testutil.ValidWorkFields(), authed)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("Step 3 - Create work failed: %d - %s", w.Code, w.Body.String())
	}
	workPath := w.Header().Get("Location")
	workID := strings.TrimPrefix(workPath, "/works/")
	if workID == "" || workID == workPath {
		t.Fatalf("Step 3 - Unexpected redirect target: %q", workPath)
	}
	t.Logf("Step 3 - Created work: %s", workID)

	// Step 4: View and edit the work
	req = testutil.MakeRequest("GET", workPath, nil, authed)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 4 - Show work failed: %d - %s", w.Code, w.Body.String())
	}
	var shown models.WorkWithVotes
	json.NewDecoder(w.Body).Decode(&shown)
	if shown.Votes != 0 {
		t.Errorf("Step 4 - Expected 0 votes on a fresh work, got %d", shown.Votes)
	}

	updated := testutil.ValidWorkFields()
	updated.Title = "Where the Sidewalk Ends"
	req = testutil.MakeRequest("PATCH", workPath, updated, authed)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("Step 4 - Update work failed: %d - %s", w.Code, w.Body.String())
	}

	// Step 5: Upvote, then upvote again
	for i := 0; i < 2; i++ {
		req = testutil.MakeRequest("POST", workPath+"/upvote", nil, authed)
		w = httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusFound {
			t.Fatalf("Step 5 - Upvote %d failed: %d - %s", i+1, w.Code, w.Body.String())
		}
	}

	req = testutil.MakeRequest("GET", workPath, nil, authed)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	json.NewDecoder(w.Body).Decode(&shown)
	if shown.Votes != 1 {
		t.Errorf("Step 5 - Expected 1 vote after a repeated upvote, got %d", shown.Votes)
	}
	if shown.Title != "Where the Sidewalk Ends" {
		t.Errorf("Step 5 - Expected updated title, got %q", shown.Title)
	}

	// Step 6: Log out
	req = testutil.MakeRequest("DELETE", "/logout", nil, authed)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("Step 6 - Logout failed: %d - %s", w.Code, w.Body.String())
	}

	// Step 7: The revoked token is anonymous again
	req = testutil.MakeRequest("GET", "/works", nil, authed)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Errorf("Step 7 - Expected redirect for revoked session, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("Step 7 - Expected redirect to /, got %q", loc)
	}
}

// TestAnonymousAccessPolicy drives anonymous requests through the full mux
// and verifies the guard's three behaviors: landing allowed, page views
// denied with a warning flash, upvotes denied without one
func TestAnonymousAccessPolicy(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := NewRouter(db, session.NewStore(), testutil.GetTestConfig())
	workID := testutil.CreateTestWork(t, db, models.CategoryAlbum, "Blue Train")

	t.Run("landing allowed", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
	})

	t.Run("page view denied with warning", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/works/"+workID, nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		testutil.AssertRedirect(t, w, "/")

		var flashValue string
		for _, c := range w.Result().Cookies() {
			if c.Name == middleware.FlashCookie {
				flashValue = c.Value
			}
		}
		if flashValue == "" {
			t.Fatal("Expected a flash cookie on the page-view deny")
		}
		decoded, _ := url.QueryUnescape(flashValue)
		if !strings.Contains(decoded, "You must be logged in to view this section") {
			t.Errorf("Expected the login warning in the flash, got %q", decoded)
		}
	})

	t.Run("upvote denied silently", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/works/"+workID+"/upvote", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		testutil.AssertRedirect(t, w, "/")

		for _, c := range w.Result().Cookies() {
			if c.Name == middleware.FlashCookie {
				t.Errorf("Denied upvote should not set a flash, got %q", c.Value)
			}
		}
	})
}

// TestAnonymousMutationsLeaveStateUntouched verifies that denied write
// attempts change nothing
func TestAnonymousMutationsLeaveStateUntouched(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := NewRouter(db, session.NewStore(), testutil.GetTestConfig())

	workID := testutil.CreateTestWork(t, db, models.CategoryBook, "Dune")
	worksBefore := testutil.CountRows(t, db, "works")
	votesBefore := testutil.CountRows(t, db, "votes")

	attempts := []*http.Request{
		testutil.MakeRequest("POST", "/works", testutil.ValidWorkFields(), nil),
		testutil.MakeRequest("PATCH", "/works/"+workID, testutil.ValidWorkFields(), nil),
		testutil.MakeRequest("DELETE", "/works/"+workID, nil, nil),
		testutil.MakeRequest("POST", "/works/"+workID+"/upvote", nil, nil),
	}

	for _, req := range attempts {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusFound {
			t.Errorf("%s %s: expected 302, got %d", req.Method, req.URL.Path, w.Code)
		}
	}

	if n := testutil.CountRows(t, db, "works"); n != worksBefore {
		t.Errorf("Anonymous mutations changed works count: %d -> %d", worksBefore, n)
	}
	if n := testutil.CountRows(t, db, "votes"); n != votesBefore {
		t.Errorf("Anonymous mutations changed votes count: %d -> %d", votesBefore, n)
	}
}
