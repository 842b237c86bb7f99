package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/seuristic/image-ecommerce/internal/auth"
	"github.com/seuristic/image-ecommerce/internal/service"
)

type AuthHandler struct {
	users  UserService
	tokens *auth.TokenManager
}

func NewAuthHandler(users UserService, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

type credentialsDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	if _, err := h.users.Register(r.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			respondError(w, http.StatusBadRequest, "Email is already present")
			return
		}
		log.Printf("register failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to register a user")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
}

// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("login failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		log.Printf("token issue failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokens.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respondJSON(w, http.StatusOK, map[string]string{"message": "success"})
}

// POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respondJSON(w, http.StatusOK, map[string]string{"message": "success"})
}
