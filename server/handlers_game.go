package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dicecrafter/yahtzee-game-server/games/yahtzee"
	"github.com/dicecrafter/yahtzee-game-server/scoring"
	"github.com/dicecrafter/yahtzee-game-server/session"
)

// ScoreRequest is the body for POST /api/score: evaluate one category against
// a finalized hand, no session involved.
type ScoreRequest struct {
	Category string `json:"category"`
	Dice     []int  `json:"dice"`
}

type ScoreResponse struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
}

// GameResponse is the session state returned by the game routes.
type GameResponse struct {
	SessionID  string         `json:"sessionId"`
	Turn       int            `json:"turn"`
	RollsLeft  int            `json:"rollsLeft"`
	Dice       []int          `json:"dice"`
	Scores     map[string]int `json:"scores"`
	Previews   map[string]int `json:"previews"`
	UpperTotal int            `json:"upperTotal"`
	Bonus      int            `json:"bonus"`
	Total      int            `json:"total"`
	Done       bool           `json:"done"`
	LastScore  *int           `json:"lastScore,omitempty"`
}

func gameResponse(sess *session.Session) GameResponse {
	g := sess.Game
	dice := make([]int, 0, yahtzee.NumDice)
	if g.Rolled() || g.Done {
		dice = append(dice, g.Dice[:]...)
	}
	return GameResponse{
		SessionID:  sess.ID,
		Turn:       g.Turn,
		RollsLeft:  g.RollsLeft,
		Dice:       dice,
		Scores:     g.Sheet.Scores,
		Previews:   g.Previews(),
		UpperTotal: g.Sheet.UpperTotal(),
		Bonus:      g.Sheet.Bonus(),
		Total:      g.Sheet.Total(),
		Done:       g.Done,
	}
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": scoring.Categories()})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body", "INVALID_BODY")
		return
	}
	req.Category = strings.TrimSpace(req.Category)
	if req.Category == "" {
		writeError(w, http.StatusBadRequest, "category required", "CATEGORY_REQUIRED")
		return
	}
	score, err := scoring.Score(req.Category, scoring.Hand(req.Dice))
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ScoreResponse{Category: req.Category, Score: score})
}

func (s *Server) handleGameCreate(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Create(yahtzee.New())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create session", "SESSION_CREATE_FAILED")
		return
	}
	writeJSON(w, http.StatusCreated, gameResponse(sess))
}

// handleGameRoute routes GET/POST/DELETE /api/games/<sessionId>[/<action>].
func (s *Server) handleGameRoute(w http.ResponseWriter, r *http.Request) {
	trimmed := strings.TrimPrefix(r.URL.Path, "/api/games/")
	parts := strings.Split(strings.Trim(trimmed, "/"), "/")
	if len(parts) < 1 || parts[0] == "" || len(parts) > 2 {
		writeError(w, http.StatusNotFound, "invalid path", "INVALID_PATH")
		return
	}
	sessionID := parts[0]
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			writeError(w, http.StatusNotFound, "session not found", "SESSION_NOT_FOUND")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load session", "SESSION_LOAD_FAILED")
		return
	}
	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, gameResponse(sess))
		case http.MethodDelete:
			if err := s.sessions.Delete(sessionID); err != nil {
				writeError(w, http.StatusInternalServerError, "failed to delete session", "SESSION_DELETE_FAILED")
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed", "METHOD_NOT_ALLOWED")
		}
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "METHOD_NOT_ALLOWED")
		return
	}
	switch parts[1] {
	case "roll":
		s.handleRoll(w, r, sess)
	case "score":
		s.handleScoreCommit(w, r, sess)
	default:
		writeError(w, http.StatusNotFound, "invalid path", "INVALID_PATH")
	}
}

// RollRequest is the body for POST /api/games/{id}/roll. Hold marks dice
// positions to keep; it is ignored on a turn's first roll.
type RollRequest struct {
	Hold [yahtzee.NumDice]bool `json:"hold"`
}

func (s *Server) handleRoll(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var req RollRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid body", "INVALID_BODY")
			return
		}
	}
	if err := sess.Game.Roll(req.Hold); err != nil {
		writeGameError(w, err)
		return
	}
	if err := s.sessions.Update(sess); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save session", "SESSION_SAVE_FAILED")
		return
	}
	writeJSON(w, http.StatusOK, gameResponse(sess))
}

// CommitRequest is the body for POST /api/games/{id}/score.
type CommitRequest struct {
	Category string `json:"category"`
}

func (s *Server) handleScoreCommit(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var req CommitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body", "INVALID_BODY")
		return
	}
	req.Category = strings.TrimSpace(req.Category)
	if req.Category == "" {
		writeError(w, http.StatusBadRequest, "category required", "CATEGORY_REQUIRED")
		return
	}
	score, err := sess.Game.ScoreCategory(req.Category)
	if err != nil {
		writeGameError(w, err)
		return
	}
	if err := s.sessions.Update(sess); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save session", "SESSION_SAVE_FAILED")
		return
	}
	resp := gameResponse(sess)
	resp.LastScore = &score
	writeJSON(w, http.StatusOK, resp)
}

// writeGameError maps engine and game errors onto the API error envelope.
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, scoring.ErrInvalidHand):
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_HAND")
	case errors.Is(err, scoring.ErrUnknownCategory):
		writeError(w, http.StatusNotFound, err.Error(), "UNKNOWN_CATEGORY")
	case errors.Is(err, yahtzee.ErrCategoryFilled):
		writeError(w, http.StatusConflict, err.Error(), "CATEGORY_FILLED")
	case errors.Is(err, yahtzee.ErrNoRollsLeft):
		writeError(w, http.StatusConflict, err.Error(), "NO_ROLLS_LEFT")
	case errors.Is(err, yahtzee.ErrNotRolled):
		writeError(w, http.StatusConflict, err.Error(), "NOT_ROLLED")
	case errors.Is(err, yahtzee.ErrGameComplete):
		writeError(w, http.StatusConflict, err.Error(), "GAME_COMPLETE")
	default:
		writeError(w, http.StatusInternalServerError, err.Error(), "INTERNAL")
	}
}
