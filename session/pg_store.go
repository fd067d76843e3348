package session

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dicecrafter/yahtzee-game-server/games/yahtzee"
)

// PGStore keeps active sessions in the dice_sessions table when a Postgres
// DSN is configured. State is the JSON-encoded game, same shape as the file
// store writes.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) (*PGStore, error) {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS dice_sessions (
			session_id text PRIMARY KEY,
			state      jsonb NOT NULL,
			created_at timestamptz NOT NULL,
			updated_at timestamptz NOT NULL
		)
	`)
	if err != nil {
		return nil, err
	}
	return &PGStore{db: db}, nil
}

func (s *PGStore) Create(g *yahtzee.Game) (*Session, error) {
	now := time.Now()
	sess := &Session{
		ID:        uuid.New().String(),
		Game:      g,
		CreatedAt: now,
		UpdatedAt: now,
	}
	state, err := json.Marshal(g)
	if err != nil {
		return nil, err
	}
	_, err = s.db.Exec(
		`INSERT INTO dice_sessions (session_id, state, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		sess.ID, state, sess.CreatedAt, sess.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *PGStore) Get(id string) (*Session, error) {
	var state []byte
	sess := &Session{ID: id}
	err := s.db.QueryRow(
		`SELECT state, created_at, updated_at FROM dice_sessions WHERE session_id = $1`,
		id,
	).Scan(&state, &sess.CreatedAt, &sess.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	g := &yahtzee.Game{}
	if err := json.Unmarshal(state, g); err != nil {
		return nil, err
	}
	sess.Game = g
	return sess, nil
}

func (s *PGStore) Update(sess *Session) error {
	state, err := json.Marshal(sess.Game)
	if err != nil {
		return err
	}
	sess.UpdatedAt = time.Now()
	res, err := s.db.Exec(
		`UPDATE dice_sessions SET state = $1, updated_at = $2 WHERE session_id = $3`,
		state, sess.UpdatedAt, sess.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PGStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM dice_sessions WHERE session_id = $1`, id)
	return err
}

func (s *PGStore) Expire(idle time.Duration) (int, error) {
	res, err := s.db.Exec(
		`DELETE FROM dice_sessions WHERE updated_at < $1`,
		time.Now().Add(-idle),
	)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}
