package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dicecrafter/yahtzee-game-server/games/yahtzee"
)

// ErrNotFound reports a session id with no live session.
var ErrNotFound = errors.New("session not found")

// Session is one player's game in progress.
type Session struct {
	ID        string        `json:"sessionId"`
	Game      *yahtzee.Game `json:"game"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Store is the operations the server needs from a session backend.
type Store interface {
	Create(g *yahtzee.Game) (*Session, error)
	Get(id string) (*Session, error)
	Update(s *Session) error
	Delete(id string) error
	// Expire removes sessions idle longer than the given duration and
	// returns how many were removed.
	Expire(idle time.Duration) (int, error)
}

// FileStore holds active sessions in memory and persists them to
// sessions.json under the data dir, so in-flight games survive a restart.
// Finished games are deleted, never archived.
type FileStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	dataDir  string
}

func NewFileStore(dataDir string) *FileStore {
	if dataDir == "" {
		dataDir = "data"
	}
	s := &FileStore{
		sessions: make(map[string]*Session),
		dataDir:  dataDir,
	}
	s.load()
	return s
}

func (s *FileStore) path() string {
	return filepath.Join(s.dataDir, "sessions.json")
}

func (s *FileStore) ensureDir() error {
	return os.MkdirAll(s.dataDir, 0755)
}

func (s *FileStore) load() {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path())
	if err != nil {
		return
	}
	var list []*Session
	if err := json.Unmarshal(data, &list); err != nil {
		return
	}
	for _, sess := range list {
		if sess != nil && sess.ID != "" && sess.Game != nil && !sess.Game.Done {
			s.sessions[sess.ID] = sess
		}
	}
}

// saveLocked writes the store to disk. Caller must hold s.mu.
func (s *FileStore) saveLocked() error {
	list := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		list = append(list, sess)
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	if err := s.ensureDir(); err != nil {
		return err
	}
	return os.WriteFile(s.path(), data, 0644)
}

func (s *FileStore) Create(g *yahtzee.Game) (*Session, error) {
	now := time.Now()
	sess := &Session{
		ID:        uuid.New().String(),
		Game:      g,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return sess, s.saveLocked()
}

func (s *FileStore) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

func (s *FileStore) Update(sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess.UpdatedAt = time.Now()
	s.sessions[sess.ID] = sess
	return s.saveLocked()
}

func (s *FileStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return s.saveLocked()
}

func (s *FileStore) Expire(idle time.Duration) (int, error) {
	cutoff := time.Now().Add(-idle)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed == 0 {
		return 0, nil
	}
	return removed, s.saveLocked()
}
