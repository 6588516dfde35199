package sqlstore

import (
	"database/sql"
	"errors"
	"time"

	"github.com/avelou/sketchbook/internal/models"
	"github.com/avelou/sketchbook/internal/store"
)

func (s *SQLStore) CreateSession(token string, userID int64, expiresAt time.Time) error {
	_, err := s.db.Exec(
		"INSERT INTO sessions (token, user_id, expires_at) VALUES (?, ?, ?)",
		token, userID, expiresAt.UTC(),
	)
	return err
}

// GetSession treats an expired session the same as a missing one.
func (s *SQLStore) GetSession(token string) (*models.Session, error) {
	var sess models.Session
	err := s.db.QueryRow(
		"SELECT token, user_id, expires_at FROM sessions WHERE token = ?",
		token,
	).Scan(&sess.Token, &sess.UserID, &sess.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if sess.Expired(time.Now()) {
		return nil, store.ErrNotFound
	}
	return &sess, nil
}

func (s *SQLStore) DeleteSession(token string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE token = ?", token)
	return err
}

func (s *SQLStore) DeleteExpiredSessions() (int64, error) {
	res, err := s.db.Exec("DELETE FROM sessions WHERE expires_at < ?", time.Now().UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
