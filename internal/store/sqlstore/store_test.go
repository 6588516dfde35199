package sqlstore

import (
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/avelou/sketchbook/internal/models"
)

var testStore *SQLStore

func SetupTestDB(t *testing.T) {
	var err error
	testStore, err = New(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
}

func TeardownTestDB() {
	testStore.db.Close()
}

func testModel(tools ...models.Tool) models.DrawingModel {
	if len(tools) == 0 {
		tools = []models.Tool{models.ToolPen}
	}
	var strokes []models.Stroke
	for _, tool := range tools {
		strokes = append(strokes, models.Stroke{
			Tool:   tool,
			Color:  "#000000",
			Size:   4,
			Points: []models.Point{{X: 0, Y: 0}, {X: 3, Y: 4}},
		})
	}
	return models.DrawingModel{Strokes: strokes, Width: 800, Height: 600}
}

func mustUser(t *testing.T, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username, Password: "hash"}
	if err := testStore.CreateUser(u); err != nil {
		t.Fatalf("CreateUser(%s): %v", username, err)
	}
	return u
}

func mustDrawing(t *testing.T, id string, userID int64, title string, shared bool) *models.DrawingRecord {
	t.Helper()
	rec := &models.DrawingRecord{
		ID:     id,
		UserID: userID,
		Title:  title,
		Data:   testModel(),
		Shared: shared,
	}
	if err := testStore.CreateDrawing(rec); err != nil {
		t.Fatalf("CreateDrawing(%s): %v", id, err)
	}
	return rec
}
