package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Stefanlynn/zinraicreativesuite/internal/middleware"
	"github.com/Stefanlynn/zinraicreativesuite/internal/session"
	"github.com/Stefanlynn/zinraicreativesuite/internal/store"
)

type AuthHandler struct {
	store    *store.Store
	sessions *session.Registry
}

func NewAuthHandler(store *store.Store, sessions *session.Registry) *AuthHandler {
	return &AuthHandler{store: store, sessions: sessions}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userSummary struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

type loginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    userSummary `json:"user"`
}

// Login checks the credentials and issues a session token. Bad
// credentials and non-admin accounts are rejected identically.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, ok := h.store.Authenticate(req.Username, req.Password)
	if !ok || !user.IsAdmin {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token := h.sessions.Create(user.ID)
	respondJSON(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   token,
		User: userSummary{
			ID:       user.ID,
			Username: user.Username,
			IsAdmin:  user.IsAdmin,
		},
	})
}

// Logout revokes the bearer token. Always succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.BearerToken(r); token != "" {
		h.sessions.Destroy(token)
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}
