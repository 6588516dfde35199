package sqlstore

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/avelou/sketchbook/internal/models"
	"github.com/avelou/sketchbook/internal/store"
)

func (s *SQLStore) CreateUser(user *models.User) error {
	res, err := s.db.Exec(
		"INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?)",
		user.Username, user.Password, time.Now().UTC(),
	)
	if err != nil {
		// sqlite reports the UNIQUE violation by column name
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.username") {
			return store.ErrUsernameTaken
		}
		return err
	}
	user.ID, err = res.LastInsertId()
	return err
}

func (s *SQLStore) GetUserByUsername(username string) (*models.User, error) {
	return s.scanUser(s.db.QueryRow(
		"SELECT id, username, password_hash, created_at FROM users WHERE username = ?",
		username,
	))
}

func (s *SQLStore) GetUserByID(id int64) (*models.User, error) {
	return s.scanUser(s.db.QueryRow(
		"SELECT id, username, password_hash, created_at FROM users WHERE id = ?",
		id,
	))
}

func (s *SQLStore) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.Password, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
