// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/media-ranker/models"
	"github.com/danielhkuo/media-ranker/testutil"
)

func TestLanding_EmptyCatalog(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewHomeHandler(conn, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	handler.Landing(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.LandingResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Spotlight != nil {
		t.Errorf("Expected no spotlight for an empty catalog, got %q", resp.Spotlight.Title)
	}
	if len(resp.Albums) != 0 || len(resp.Books) != 0 || len(resp.Movies) != 0 {
		t.Error("Expected every category list to be empty")
	}
}

func TestLanding_PartialCatalog(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewHomeHandler(conn, testutil.GetTestConfig())

	// Books only; albums and movies stay empty
	testutil.CreateTestWork(t, conn, models.CategoryBook, "Dune")
	testutil.CreateTestWork(t, conn, models.CategoryBook, "Hyperion")

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	handler.Landing(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.LandingResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Spotlight == nil {
		t.Fatal("Expected a spotlight once any work exists")
	}
	if len(resp.Books) != 2 {
		t.Errorf("Expected 2 books, got %d", len(resp.Books))
	}
	if len(resp.Albums) != 0 {
		t.Errorf("Expected 0 albums, got %d", len(resp.Albums))
	}
	if len(resp.Movies) != 0 {
		t.Errorf("Expected 0 movies, got %d", len(resp.Movies))
	}
}

func TestLanding_SpotlightAndRanking(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewHomeHandler(conn, testutil.GetTestConfig())

	album := testutil.CreateTestWork(t, conn, models.CategoryAlbum, "Blue Train")
	book := testutil.CreateTestWork(t, conn, models.CategoryBook, "Dune")
	favorite := testutil.CreateTestWork(t, conn, models.CategoryMovie, "Alien")
	runnerUp := testutil.CreateTestWork(t, conn, models.CategoryMovie, "Aliens")

	alice := testutil.CreateTestUser(t, conn, "alice")
	bob := testutil.CreateTestUser(t, conn, "bob")

	testutil.CreateTestVote(t, conn, alice, favorite)
	testutil.CreateTestVote(t, conn, bob, favorite)
	testutil.CreateTestVote(t, conn, alice, runnerUp)
	testutil.CreateTestVote(t, conn, bob, book)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	handler.Landing(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.LandingResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Spotlight == nil {
		t.Fatal("Expected a spotlight")
	}
	if resp.Spotlight.ID != favorite {
		t.Errorf("Expected the most-voted work as spotlight, got %q", resp.Spotlight.Title)
	}
	if resp.Spotlight.Votes != 2 {
		t.Errorf("Expected spotlight vote count 2, got %d", resp.Spotlight.Votes)
	}

	if len(resp.Movies) != 2 {
		t.Fatalf("Expected 2 movies, got %d", len(resp.Movies))
	}
	if resp.Movies[0].ID != favorite || resp.Movies[1].ID != runnerUp {
		t.Errorf("Movies not ordered by votes: got %q then %q",
			resp.Movies[0].Title, resp.Movies[1].Title)
	}

	if len(resp.Albums) != 1 || resp.Albums[0].ID != album {
		t.Error("Expected the lone album in its category list")
	}
	if len(resp.Albums) == 1 && resp.Albums[0].Votes != 0 {
		t.Errorf("Expected 0 votes for the album, got %d", resp.Albums[0].Votes)
	}
	if len(resp.Books) != 1 || resp.Books[0].Votes != 1 {
		t.Error("Expected the book with 1 vote in its category list")
	}
}
