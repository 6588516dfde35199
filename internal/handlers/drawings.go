package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/avelou/sketchbook/internal/middleware"
	"github.com/avelou/sketchbook/internal/models"
	"github.com/avelou/sketchbook/internal/store"
	"github.com/avelou/sketchbook/internal/validate"
	"github.com/avelou/sketchbook/internal/ws"
)

type DrawingHandler struct {
	Store store.Store
	Hub   *ws.Hub
}

type CreateDrawingRequest struct {
	Title  string               `json:"title"`
	Data   *models.DrawingModel `json:"data"`
	Shared bool                 `json:"shared"`
}

// UpdateDrawingRequest is a partial update; absent fields stay as they
// are.
type UpdateDrawingRequest struct {
	Title  *string              `json:"title"`
	Data   *models.DrawingModel `json:"data"`
	Shared *bool                `json:"shared"`
}

func (h *DrawingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var req CreateDrawingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Title(req.Title); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Model(req.Data); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec := &models.DrawingRecord{
		ID:     uuid.NewString(),
		UserID: userID,
		Title:  req.Title,
		Data:   *req.Data,
		Shared: req.Shared,
	}
	if err := h.Store.CreateDrawing(rec); err != nil {
		storeError(w, err)
		return
	}

	h.notify("created", rec.ID, rec.Title, rec.Shared, rec.UserID)
	respondJSON(w, http.StatusCreated, map[string]string{
		"id":    rec.ID,
		"title": rec.Title,
	})
}

func (h *DrawingHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.Store.ListDrawings(middleware.UserID(r))
	if err != nil {
		storeError(w, err)
		return
	}
	if recs == nil {
		recs = []models.DrawingRecord{}
	}
	respondJSON(w, http.StatusOK, recs)
}

// Get serves any drawing by id, shared or not: direct links work
// without an account.
func (h *DrawingHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Store.GetDrawing(mux.Vars(r)["id"])
	if err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

func (h *DrawingHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	tool := models.Tool(r.URL.Query().Get("tool"))
	if tool != "" && !tool.Valid() {
		respondError(w, http.StatusBadRequest, "unknown tool")
		return
	}

	recs, err := h.Store.SearchDrawings(q, tool)
	if err != nil {
		storeError(w, err)
		return
	}
	if recs == nil {
		recs = []models.DrawingRecord{}
	}
	respondJSON(w, http.StatusOK, recs)
}

func (h *DrawingHandler) Update(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.ownedDrawing(w, r)
	if !ok {
		return
	}

	var req UpdateDrawingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == nil && req.Data == nil && req.Shared == nil {
		respondError(w, http.StatusBadRequest, validate.ErrNothingToUpdate.Error())
		return
	}
	if req.Title != nil {
		if err := validate.Title(*req.Title); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Data != nil {
		if err := validate.Model(req.Data); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	upd := store.DrawingUpdate{Title: req.Title, Data: req.Data, Shared: req.Shared}
	if err := h.Store.UpdateDrawing(rec.ID, upd); err != nil {
		storeError(w, err)
		return
	}

	title := rec.Title
	if req.Title != nil {
		title = *req.Title
	}
	shared := rec.Shared
	if req.Shared != nil {
		shared = *req.Shared
	}
	h.notify("updated", rec.ID, title, shared, rec.UserID)
	respondJSON(w, http.StatusOK, map[string]string{
		"id":    rec.ID,
		"title": title,
	})
}

func (h *DrawingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.ownedDrawing(w, r)
	if !ok {
		return
	}
	if err := h.Store.DeleteDrawing(rec.ID); err != nil {
		storeError(w, err)
		return
	}
	h.notify("deleted", rec.ID, rec.Title, rec.Shared, rec.UserID)
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Share flips the record's visibility flag.
func (h *DrawingHandler) Share(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.ownedDrawing(w, r)
	if !ok {
		return
	}
	shared := !rec.Shared
	if err := h.Store.SetShared(rec.ID, shared); err != nil {
		storeError(w, err)
		return
	}
	// Announce with the broader of the two states so newly hidden
	// drawings still disappear from anonymous galleries.
	h.notify("shared", rec.ID, rec.Title, rec.Shared || shared, rec.UserID)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":     rec.ID,
		"shared": shared,
	})
}

// ownedDrawing loads the requested drawing and enforces the owner-only
// rule for mutations: 404 if absent, 403 if the caller isn't the owner.
func (h *DrawingHandler) ownedDrawing(w http.ResponseWriter, r *http.Request) (*models.DrawingRecord, bool) {
	rec, err := h.Store.GetDrawing(mux.Vars(r)["id"])
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "not found")
		return nil, false
	}
	if err != nil {
		storeError(w, err)
		return nil, false
	}
	if rec.UserID == 0 || rec.UserID != middleware.UserID(r) {
		respondError(w, http.StatusForbidden, "not the owner")
		return nil, false
	}
	return rec, true
}

func (h *DrawingHandler) notify(typ, id, title string, shared bool, ownerID int64) {
	if h.Hub == nil {
		return
	}
	h.Hub.Notify(ws.Event{Type: typ, ID: id, Title: title, Shared: shared, OwnerID: ownerID})
}
