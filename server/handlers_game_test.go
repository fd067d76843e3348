package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dicecrafter/yahtzee-game-server/config"
	"github.com/dicecrafter/yahtzee-game-server/session"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{Port: 0, DataDir: t.TempDir(), SessionTTL: time.Hour}
	return &Server{cfg: cfg, sessions: session.NewFileStore(cfg.DataDir)}
}

func do(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHealth(t *testing.T) {
	s := testServer(t)
	rec := do(t, s, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestCategoriesEndpoint(t *testing.T) {
	s := testServer(t)
	rec := do(t, s, http.MethodGet, "/api/categories", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var resp struct {
		Categories []string `json:"categories"`
	}
	decode(t, rec, &resp)
	if len(resp.Categories) != 13 {
		t.Errorf("got %d categories, want 13", len(resp.Categories))
	}
	if resp.Categories[0] != "ones" || resp.Categories[12] != "chance" {
		t.Errorf("unexpected order: %v", resp.Categories)
	}
}

func TestScoreEndpoint(t *testing.T) {
	s := testServer(t)
	for _, tt := range []struct {
		req      ScoreRequest
		status   int
		want     int
		wantCode string
	}{
		{ScoreRequest{Category: "fullHouse", Dice: []int{2, 2, 3, 3, 3}}, http.StatusOK, 25, ""},
		{ScoreRequest{Category: "smallStraight", Dice: []int{1, 2, 3, 4, 6}}, http.StatusOK, 30, ""},
		{ScoreRequest{Category: "chance", Dice: []int{1, 2, 3, 4, 5}}, http.StatusOK, 15, ""},
		{ScoreRequest{Category: "threeOfKind", Dice: []int{5, 5, 2, 2, 1}}, http.StatusOK, 0, ""},
		{ScoreRequest{Category: "grandSlam", Dice: []int{1, 2, 3, 4, 5}}, http.StatusNotFound, 0, "UNKNOWN_CATEGORY"},
		{ScoreRequest{Category: "chance", Dice: []int{1, 2, 3, 4}}, http.StatusBadRequest, 0, "INVALID_HAND"},
		{ScoreRequest{Category: "chance", Dice: []int{1, 2, 3, 4, 7}}, http.StatusBadRequest, 0, "INVALID_HAND"},
	} {
		rec := do(t, s, http.MethodPost, "/api/score", tt.req)
		if rec.Code != tt.status {
			t.Errorf("%s %v: status %d want %d (%s)", tt.req.Category, tt.req.Dice, rec.Code, tt.status, rec.Body.String())
			continue
		}
		if tt.wantCode != "" {
			var apiErr APIError
			decode(t, rec, &apiErr)
			if apiErr.Code != tt.wantCode {
				t.Errorf("%s: error code %q want %q", tt.req.Category, apiErr.Code, tt.wantCode)
			}
			continue
		}
		var resp ScoreResponse
		decode(t, rec, &resp)
		if resp.Score != tt.want {
			t.Errorf("%s %v: score %d want %d", tt.req.Category, tt.req.Dice, resp.Score, tt.want)
		}
	}
}

func TestGameLifecycle(t *testing.T) {
	s := testServer(t)

	rec := do(t, s, http.MethodPost, "/api/games", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status %d (%s)", rec.Code, rec.Body.String())
	}
	var game GameResponse
	decode(t, rec, &game)
	if game.SessionID == "" || game.Turn != 1 || game.RollsLeft != 3 {
		t.Fatalf("unexpected new game: %+v", game)
	}
	if len(game.Dice) != 0 {
		t.Errorf("new game should have no dice on the table: %v", game.Dice)
	}

	base := "/api/games/" + game.SessionID

	// Scoring before rolling is rejected.
	rec = do(t, s, http.MethodPost, base+"/score", CommitRequest{Category: "chance"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("score before roll: status %d", rec.Code)
	}

	rec = do(t, s, http.MethodPost, base+"/roll", RollRequest{})
	if rec.Code != http.StatusOK {
		t.Fatalf("roll: status %d (%s)", rec.Code, rec.Body.String())
	}
	decode(t, rec, &game)
	if game.RollsLeft != 2 || len(game.Dice) != 5 {
		t.Fatalf("after roll: %+v", game)
	}
	if len(game.Previews) != 13 {
		t.Errorf("previews: %d entries want 13", len(game.Previews))
	}

	// Hold everything: dice must not change.
	held := game.Dice
	rec = do(t, s, http.MethodPost, base+"/roll", RollRequest{Hold: [5]bool{true, true, true, true, true}})
	if rec.Code != http.StatusOK {
		t.Fatalf("held roll: status %d", rec.Code)
	}
	decode(t, rec, &game)
	for i := range held {
		if game.Dice[i] != held[i] {
			t.Fatalf("held dice changed: %v -> %v", held, game.Dice)
		}
	}

	rec = do(t, s, http.MethodPost, base+"/score", CommitRequest{Category: "chance"})
	if rec.Code != http.StatusOK {
		t.Fatalf("commit: status %d (%s)", rec.Code, rec.Body.String())
	}
	decode(t, rec, &game)
	if game.LastScore == nil {
		t.Fatal("commit response missing lastScore")
	}
	sum := 0
	for _, v := range held {
		sum += v
	}
	if *game.LastScore != sum {
		t.Errorf("chance committed %d, want %d", *game.LastScore, sum)
	}
	if game.Turn != 2 || game.RollsLeft != 3 {
		t.Errorf("turn not advanced: %+v", game)
	}
	if game.Scores["chance"] != sum {
		t.Errorf("sheet: %v", game.Scores)
	}

	// Same category again on a later turn conflicts.
	rec = do(t, s, http.MethodPost, base+"/roll", RollRequest{})
	if rec.Code != http.StatusOK {
		t.Fatal("second turn roll failed")
	}
	rec = do(t, s, http.MethodPost, base+"/score", CommitRequest{Category: "chance"})
	if rec.Code != http.StatusConflict {
		t.Errorf("refill: status %d", rec.Code)
	}

	rec = do(t, s, http.MethodDelete, base, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: status %d", rec.Code)
	}
	rec = do(t, s, http.MethodGet, base, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete: status %d", rec.Code)
	}
}

func TestGameRouteErrors(t *testing.T) {
	s := testServer(t)
	rec := do(t, s, http.MethodGet, "/api/games/no-such-session", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing session: status %d", rec.Code)
	}

	created := do(t, s, http.MethodPost, "/api/games", nil)
	var game GameResponse
	decode(t, created, &game)

	rec = do(t, s, http.MethodGet, fmt.Sprintf("/api/games/%s/dance", game.SessionID), nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET action: status %d", rec.Code)
	}
	rec = do(t, s, http.MethodPost, fmt.Sprintf("/api/games/%s/dance", game.SessionID), nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown action: status %d", rec.Code)
	}

	rec = do(t, s, http.MethodPost, "/api/games/"+game.SessionID+"/score", CommitRequest{Category: ""})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty category: status %d", rec.Code)
	}
}
