package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	ygs "github.com/dicecrafter/yahtzee-game-server"
	"github.com/dicecrafter/yahtzee-game-server/config"
	"github.com/dicecrafter/yahtzee-game-server/session"
)

type Server struct {
	cfg      *config.Config
	sessions session.Store
}

func New(cfg *config.Config) *Server {
	srv := &Server{cfg: cfg}
	db, err := ygs.GetDB()
	if err != nil {
		log.Printf("yahtzee: database unavailable, using file store: %v", err)
	}
	if db != nil && err == nil {
		pg, err := session.NewPGStore(db)
		if err != nil {
			log.Printf("yahtzee: pg session store init failed, using file store: %v", err)
		} else {
			srv.sessions = pg
			log.Printf("yahtzee: sessions persisted to Postgres")
		}
	}
	if srv.sessions == nil {
		srv.sessions = session.NewFileStore(cfg.DataDir)
	}
	return srv
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.health)
	mux.HandleFunc("GET /api/categories", s.handleCategories)
	mux.HandleFunc("POST /api/score", s.handleScore)
	mux.HandleFunc("POST /api/games", s.handleGameCreate)
	// Session routes: state, roll, score commit, abandon
	mux.HandleFunc("GET /api/games/", s.handleGameRoute)
	mux.HandleFunc("POST /api/games/", s.handleGameRoute)
	mux.HandleFunc("DELETE /api/games/", s.handleGameRoute)
	return mux
}

func (s *Server) Run() error {
	go s.sweepSessions()
	port := s.cfg.Port
	if port <= 0 {
		port = 8081
	}
	addr := ":" + strconv.Itoa(port)
	log.Printf("yahtzee listening on %s (data dir: %s)", addr, s.cfg.DataDir)
	return http.ListenAndServe(addr, cors(requestLogger(s.routes())))
}

// sweepSessions periodically removes sessions idle past the configured TTL.
func (s *Server) sweepSessions() {
	ttl := s.cfg.SessionTTL
	if ttl <= 0 {
		return
	}
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		n, err := s.sessions.Expire(ttl)
		if err != nil {
			log.Printf("yahtzee: session sweep failed: %v", err)
			continue
		}
		if n > 0 {
			log.Printf("yahtzee: expired %d idle session(s)", n)
		}
	}
}

func cors(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// requestLogger logs method and path for each request (no body).
func requestLogger(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("yahtzee %s %s", r.Method, r.URL.Path)
		h.ServeHTTP(w, r)
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok", "service": "yahtzee"})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
