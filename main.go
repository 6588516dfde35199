package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/avelou/sketchbook/internal/auth"
	"github.com/avelou/sketchbook/internal/config"
	"github.com/avelou/sketchbook/internal/handlers"
	"github.com/avelou/sketchbook/internal/middleware"
	"github.com/avelou/sketchbook/internal/store/sqlstore"
	"github.com/avelou/sketchbook/internal/ws"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	store, err := sqlstore.New(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}

	codec := auth.NewCodec(cfg.CookieSecret)

	// Initialize WebSocket Hub
	hub := ws.NewHub()
	go hub.Run()

	// Expired sessions answer as logged-out immediately; the sweeper
	// just keeps the table from growing without bound.
	go func() {
		for range time.Tick(time.Hour) {
			if n, err := store.DeleteExpiredSessions(); err != nil {
				log.Printf("session sweep: %v", err)
			} else if n > 0 {
				log.Printf("session sweep: removed %d", n)
			}
		}
	}()

	// Initialize Handlers
	authHandler := &handlers.AuthHandler{Store: store, Codec: codec, SessionTTL: cfg.SessionTTL}
	drawingHandler := &handlers.DrawingHandler{Store: store, Hub: hub}

	requireAuth := middleware.RequireAuth(codec, store)
	currentUser := middleware.CurrentUser(codec, store)

	r := mux.NewRouter()
	r.Use(middleware.Logging)

	// API Endpoints
	r.HandleFunc("/api/health", handlers.Health).Methods("GET")
	r.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	r.Handle("/auth/me", currentUser(http.HandlerFunc(authHandler.Me))).Methods("GET")

	r.Handle("/api/drawings", requireAuth(http.HandlerFunc(drawingHandler.Create))).Methods("POST")
	r.Handle("/api/drawings", currentUser(http.HandlerFunc(drawingHandler.List))).Methods("GET")
	r.HandleFunc("/api/drawings/{id}", drawingHandler.Get).Methods("GET")
	r.HandleFunc("/api/drawings/{id}/thumbnail.png", drawingHandler.Thumbnail).Methods("GET")
	r.Handle("/api/drawings/{id}", requireAuth(http.HandlerFunc(drawingHandler.Update))).Methods("PUT")
	r.Handle("/api/drawings/{id}", requireAuth(http.HandlerFunc(drawingHandler.Delete))).Methods("DELETE")
	r.Handle("/api/drawings/{id}/share", requireAuth(http.HandlerFunc(drawingHandler.Share))).Methods("POST")
	r.HandleFunc("/api/search", drawingHandler.Search).Methods("GET")

	// WebSocket gallery feed; anonymous viewers are fine, they just
	// only see shared-drawing events.
	r.Handle("/ws", currentUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWs(hub, w, r, middleware.UserID(r))
	})))

	// Serve the browser client
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, cfg.StaticDir+"/index.html")
	})

	// Serve static files with cache-busting headers for development
	r.PathPrefix("/").Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, ".css") || strings.HasSuffix(r.URL.Path, ".js") {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
		}
		http.FileServer(http.Dir(cfg.StaticDir)).ServeHTTP(w, r)
	}))

	log.Println("Starting server on", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, r))
}
