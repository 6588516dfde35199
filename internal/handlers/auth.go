package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/avelou/sketchbook/internal/auth"
	"github.com/avelou/sketchbook/internal/middleware"
	"github.com/avelou/sketchbook/internal/models"
	"github.com/avelou/sketchbook/internal/store"
	"github.com/avelou/sketchbook/internal/validate"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthHandler struct {
	Store      store.Store
	Codec      *auth.Codec
	SessionTTL time.Duration
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Credentials(creds.Username, creds.Password); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	user := &models.User{
		Username: creds.Username,
		Password: string(hashedPassword),
	}
	if err := h.Store.CreateUser(user); err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			respondError(w, http.StatusConflict, "username already taken")
			return
		}
		storeError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Unknown username and wrong password answer identically, so a
	// login probe can't tell which usernames exist.
	user, err := h.Store.GetUserByUsername(creds.Username)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.NewSessionToken()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	expiresAt := time.Now().Add(h.SessionTTL)
	if err := h.Store.CreateSession(token, user.ID, expiresAt); err != nil {
		storeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    h.Codec.Sign(token),
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookie); err == nil {
		if token, err := h.Codec.Verify(cookie.Value); err == nil {
			if err := h.Store.DeleteSession(token); err != nil {
				log.Printf("delete session: %v", err)
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:    auth.SessionCookie,
		Value:   "",
		Path:    "/",
		Expires: time.Unix(0, 0),
		MaxAge:  -1,
	})
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Me reports the logged-in user, or {"user": null} for anonymous
// callers. Sits behind the optional CurrentUser middleware.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	if userID == 0 {
		respondJSON(w, http.StatusOK, map[string]interface{}{"user": nil})
		return
	}
	user, err := h.Store.GetUserByID(userID)
	if err != nil {
		respondJSON(w, http.StatusOK, map[string]interface{}{"user": nil})
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}
