package models

import (
	"encoding/json"
	"errors"
	"time"
)

// Tool identifies which drawing tool produced a stroke. The values are
// the wire names shared with the browser client.
type Tool string

const (
	ToolPen    Tool = "pen"
	ToolEraser Tool = "eraser"
	ToolLine   Tool = "line"
	ToolRect   Tool = "rect"
	ToolCircle Tool = "circle"
)

// Tools lists every valid tool value.
var Tools = []Tool{ToolPen, ToolEraser, ToolLine, ToolRect, ToolCircle}

func (t Tool) Valid() bool {
	for _, v := range Tools {
		if t == v {
			return true
		}
	}
	return false
}

// Point is one canvas coordinate. On the wire it is a two-element array
// [x, y], which keeps saved drawings compact and byte-stable across
// save/load cycles.
type Point struct {
	X float64
	Y float64
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var raw []float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.New("point must be an array of two numbers")
	}
	if len(raw) != 2 {
		return errors.New("point must have exactly two coordinates")
	}
	p.X, p.Y = raw[0], raw[1]
	return nil
}

// Stroke is one continuous drawing gesture: the tool and brush settings
// it was made with, plus the captured pointer path. A stroke always has
// at least one point; a single point renders as a dot of radius Size/2.
type Stroke struct {
	Tool   Tool    `json:"tool"`
	Color  string  `json:"color"`
	Size   float64 `json:"size"`
	Points []Point `json:"points"`
}

// DrawingModel is the full serializable canvas state. Stroke order is
// z-order: later strokes paint over earlier ones.
type DrawingModel struct {
	Strokes    []Stroke `json:"strokes"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Background string   `json:"background,omitempty"`
}

// DrawingRecord wraps a DrawingModel with the metadata the store owns.
// UserID 0 means the record has no owner.
type DrawingRecord struct {
	ID        string       `json:"id"`
	UserID    int64        `json:"user_id,omitempty"`
	Username  string       `json:"username,omitempty"`
	Title     string       `json:"title"`
	Data      DrawingModel `json:"data"`
	Shared    bool         `json:"shared"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is an opaque server-side login token.
type Session struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
