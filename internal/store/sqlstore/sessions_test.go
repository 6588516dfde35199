package sqlstore

import (
	"errors"
	"testing"
	"time"

	"github.com/avelou/sketchbook/internal/store"
)

func TestSessionLifecycle(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	user := mustUser(t, "sessionuser")
	if err := testStore.CreateSession("tok-1", user.ID, time.Now().Add(8*time.Hour)); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	sess, err := testStore.GetSession("tok-1")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if sess.UserID != user.ID {
		t.Errorf("Expected user %d, got %d", user.ID, sess.UserID)
	}

	if err := testStore.DeleteSession("tok-1"); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	if _, err := testStore.GetSession("tok-1"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}

func TestExpiredSessionIsNotFound(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	user := mustUser(t, "expired")
	testStore.CreateSession("tok-old", user.ID, time.Now().Add(-time.Minute))

	if _, err := testStore.GetSession("tok-old"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected expired session to read as not found, got %v", err)
	}
}

func TestDeleteExpiredSessions(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	user := mustUser(t, "sweeper")
	testStore.CreateSession("tok-live", user.ID, time.Now().Add(time.Hour))
	testStore.CreateSession("tok-dead", user.ID, time.Now().Add(-time.Hour))

	n, err := testStore.DeleteExpiredSessions()
	if err != nil {
		t.Fatalf("DeleteExpiredSessions: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 swept session, got %d", n)
	}
	if _, err := testStore.GetSession("tok-live"); err != nil {
		t.Errorf("Expected live session to survive the sweep: %v", err)
	}
}
