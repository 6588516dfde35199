package sqlstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/avelou/sketchbook/internal/models"
	"github.com/avelou/sketchbook/internal/store"
)

const drawingColumns = `
	d.id, d.user_id, COALESCE(u.username, ''), d.title, d.data, d.shared, d.created_at, d.updated_at
	FROM drawings d
	LEFT JOIN users u ON d.user_id = u.id`

func (s *SQLStore) CreateDrawing(rec *models.DrawingRecord) error {
	data, err := json.Marshal(rec.Data)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	rec.CreatedAt, rec.UpdatedAt = now, now

	var userID interface{}
	if rec.UserID != 0 {
		userID = rec.UserID
	}
	_, err = s.db.Exec(
		"INSERT INTO drawings (id, user_id, title, data, shared, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		rec.ID, userID, rec.Title, string(data), rec.Shared, rec.CreatedAt, rec.UpdatedAt,
	)
	return err
}

func (s *SQLStore) GetDrawing(id string) (*models.DrawingRecord, error) {
	row := s.db.QueryRow("SELECT "+drawingColumns+" WHERE d.id = ?", id)
	rec, err := scanDrawing(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	return rec, err
}

// ListDrawings returns what the viewer may see: shared drawings for
// everyone, plus the viewer's own. Newest-updated first.
func (s *SQLStore) ListDrawings(viewerID int64) ([]models.DrawingRecord, error) {
	query := "SELECT " + drawingColumns + " WHERE d.shared = 1"
	args := []interface{}{}
	if viewerID != 0 {
		query = "SELECT " + drawingColumns + " WHERE d.shared = 1 OR d.user_id = ?"
		args = append(args, viewerID)
	}
	query += " ORDER BY d.updated_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDrawings(rows, "")
}

// SearchDrawings unions case-insensitive title matches with all shared
// drawings. The union is intentionally broader than list visibility;
// see the search endpoint notes in DESIGN.md. The tool filter keeps
// only drawings containing at least one stroke made with that tool, and
// is applied after decoding since the data column is opaque JSON text.
func (s *SQLStore) SearchDrawings(q string, tool models.Tool) ([]models.DrawingRecord, error) {
	rows, err := s.db.Query(
		"SELECT "+drawingColumns+
			" WHERE (? != '' AND instr(lower(d.title), lower(?)) > 0) OR d.shared = 1"+
			" ORDER BY d.updated_at DESC",
		q, q,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDrawings(rows, tool)
}

func (s *SQLStore) UpdateDrawing(id string, upd store.DrawingUpdate) error {
	sets := []string{"updated_at = ?"}
	args := []interface{}{time.Now().UTC()}
	if upd.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *upd.Title)
	}
	if upd.Data != nil {
		data, err := json.Marshal(upd.Data)
		if err != nil {
			return err
		}
		sets = append(sets, "data = ?")
		args = append(args, string(data))
	}
	if upd.Shared != nil {
		sets = append(sets, "shared = ?")
		args = append(args, *upd.Shared)
	}
	args = append(args, id)

	res, err := s.db.Exec("UPDATE drawings SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *SQLStore) DeleteDrawing(id string) error {
	res, err := s.db.Exec("DELETE FROM drawings WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *SQLStore) SetShared(id string, shared bool) error {
	res, err := s.db.Exec(
		"UPDATE drawings SET shared = ?, updated_at = ? WHERE id = ?",
		shared, time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDrawing(row rowScanner) (*models.DrawingRecord, error) {
	var rec models.DrawingRecord
	var userID sql.NullInt64
	var data string
	err := row.Scan(&rec.ID, &userID, &rec.Username, &rec.Title, &data,
		&rec.Shared, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	rec.UserID = userID.Int64
	if err := json.Unmarshal([]byte(data), &rec.Data); err != nil {
		return nil, err
	}
	return &rec, nil
}

func collectDrawings(rows *sql.Rows, tool models.Tool) ([]models.DrawingRecord, error) {
	var recs []models.DrawingRecord
	for rows.Next() {
		rec, err := scanDrawing(rows)
		if err != nil {
			return nil, err
		}
		if tool != "" && !hasTool(&rec.Data, tool) {
			continue
		}
		recs = append(recs, *rec)
	}
	return recs, rows.Err()
}

func hasTool(m *models.DrawingModel, tool models.Tool) bool {
	for i := range m.Strokes {
		if m.Strokes[i].Tool == tool {
			return true
		}
	}
	return false
}
