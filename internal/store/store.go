package store

import (
	"errors"
	"time"

	"github.com/avelou/sketchbook/internal/models"
)

var (
	// ErrNotFound covers missing users, drawings and expired or unknown
	// sessions.
	ErrNotFound = errors.New("not found")
	// ErrUsernameTaken is returned by CreateUser on a duplicate username.
	ErrUsernameTaken = errors.New("username already taken")
)

// DrawingUpdate is a partial update; nil fields are left untouched.
type DrawingUpdate struct {
	Title  *string
	Data   *models.DrawingModel
	Shared *bool
}

type Store interface {
	// User operations
	CreateUser(user *models.User) error
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id int64) (*models.User, error)

	// Session operations
	CreateSession(token string, userID int64, expiresAt time.Time) error
	GetSession(token string) (*models.Session, error)
	DeleteSession(token string) error
	DeleteExpiredSessions() (int64, error)

	// Drawing operations. viewerID 0 means an anonymous caller.
	CreateDrawing(rec *models.DrawingRecord) error
	GetDrawing(id string) (*models.DrawingRecord, error)
	ListDrawings(viewerID int64) ([]models.DrawingRecord, error)
	SearchDrawings(q string, tool models.Tool) ([]models.DrawingRecord, error)
	UpdateDrawing(id string, upd DrawingUpdate) error
	DeleteDrawing(id string) error
	SetShared(id string, shared bool) error
}
