// Package validate holds the payload rules shared by every write
// endpoint, so the accepted drawing shape is defined in one place
// rather than checked ad hoc per handler.
package validate

import (
	"fmt"
	"regexp"

	"github.com/avelou/sketchbook/internal/models"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrTitleRequired   = Error("title must be between 1 and 200 characters")
	ErrNoStrokes       = Error("drawing must contain at least one stroke")
	ErrNoDimensions    = Error("width and height must be at least 1")
	ErrUsernameInvalid = Error("username must be 3-32 letters, digits or underscores")
	ErrPasswordTooWeak = Error("password must be at least 8 characters")
	ErrNothingToUpdate = Error("update must change at least one field")
)

const (
	MaxTitleLen = 200
	MinSize     = 1
	MaxSize     = 64
)

var usernameRe = regexp.MustCompile(`^\w{3,32}$`)

func Credentials(username, password string) error {
	if !usernameRe.MatchString(username) {
		return ErrUsernameInvalid
	}
	if len(password) < 8 {
		return ErrPasswordTooWeak
	}
	return nil
}

func Title(title string) error {
	if len(title) < 1 || len(title) > MaxTitleLen {
		return ErrTitleRequired
	}
	return nil
}

// Model checks a drawing payload against the persistence rules: at
// least one stroke, every stroke well formed, sane dimensions.
func Model(m *models.DrawingModel) error {
	if m == nil || len(m.Strokes) == 0 {
		return ErrNoStrokes
	}
	if m.Width < 1 || m.Height < 1 {
		return ErrNoDimensions
	}
	for i := range m.Strokes {
		if err := stroke(i, &m.Strokes[i]); err != nil {
			return err
		}
	}
	return nil
}

func stroke(i int, s *models.Stroke) error {
	if !s.Tool.Valid() {
		return Error(fmt.Sprintf("stroke %d: unknown tool %q", i, s.Tool))
	}
	if s.Size < MinSize || s.Size > MaxSize {
		return Error(fmt.Sprintf("stroke %d: size must be between %d and %d", i, MinSize, MaxSize))
	}
	if len(s.Points) == 0 {
		return Error(fmt.Sprintf("stroke %d: at least one point required", i))
	}
	return nil
}
