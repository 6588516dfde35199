package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/avelou/sketchbook/internal/store"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

// respondError writes the JSON error envelope every endpoint uses.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// storeError maps store failures onto the API taxonomy. Anything the
// store didn't classify is an internal error and the detail stays in
// the server log only.
func storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	log.Printf("store: %v", err)
	respondError(w, http.StatusInternalServerError, "internal error")
}
