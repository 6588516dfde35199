package handlers

import (
	"image/png"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avelou/sketchbook/internal/canvas"
)

const thumbnailEdge = 256

// Thumbnail replays the stored model through the same renderer the
// editor uses and serves the result as a PNG. Same open-read policy as
// Get.
func (h *DrawingHandler) Thumbnail(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Store.GetDrawing(mux.Vars(r)["id"])
	if err != nil {
		storeError(w, err)
		return
	}

	img := canvas.Thumbnail(&rec.Data, thumbnailEdge)
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	if err := png.Encode(w, img); err != nil {
		log.Printf("encode thumbnail %s: %v", rec.ID, err)
	}
}
