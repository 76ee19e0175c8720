package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

type Handler struct {
	authService Service
}

func NewHandler(authService Service) *Handler {
	return &Handler{
		authService: authService,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"message": message,
	})
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Username and password are required")
		return
	}
	if req.Username == "" || req.Password == "" {
		respondMessage(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	_, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			respondMessage(w, http.StatusBadRequest, "User already exists")
			return
		}
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondMessage(w, http.StatusCreated, "User registered successfully")
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Username and password are required")
		return
	}
	if req.Username == "" || req.Password == "" {
		respondMessage(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, accessToken, refreshToken, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			respondMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":       "Login successful",
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user":          user,
	})
}

func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if authHeader == "" || tokenString == authHeader {
		respondMessage(w, http.StatusUnauthorized, "Refresh token is required")
		return
	}

	accessToken, err := h.authService.Refresh(r.Context(), tokenString)
	if err != nil {
		respondMessage(w, http.StatusUnauthorized, "Token refresh failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "Token refresh successful",
		"access_token": accessToken,
	})
}

// HandleLogout is stateless: access tokens simply expire, and clients
// drop their refresh token.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	respondMessage(w, http.StatusOK, "Logout successful")
}
