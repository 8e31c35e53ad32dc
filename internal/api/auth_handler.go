package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"recruitdesk/internal/auth"
	"recruitdesk/internal/storage"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginHandler verifies credentials and issues a bearer token
// @Summary Log in
// @Description Verify email and password, returning a bearer token and the user
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (a *API) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password required")
		return
	}

	user, err := a.db.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login lookup failed: %v", err)
		}
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if !user.IsActive || !auth.CheckPassword(user.PasswordHash, req.Password) {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := a.tokens.Issue(user)
	if err != nil {
		log.Printf("Token issue failed: %v", err)
		writeError(w, http.StatusInternalServerError, "could not create session")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

type registerRequest struct {
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Password   string       `json:"password"`
	Role       storage.Role `json:"role"`
	Phone      string       `json:"phone"`
	Department string       `json:"department"`
}

// RegisterHandler creates a new user account
// @Summary Register a user
// @Tags auth
// @Accept json
// @Produce json
// @Param user body registerRequest true "New user"
// @Success 201 {object} storage.User
// @Failure 400 {object} map[string]string
// @Router /auth/register [post]
func (a *API) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if req.Role != storage.RoleRecruiter && req.Role != storage.RoleSuperUser {
		writeError(w, http.StatusBadRequest, "Unknown role")
		return
	}

	if _, err := a.db.GetUserByEmail(r.Context(), req.Email); err == nil {
		writeError(w, http.StatusBadRequest, "User already exists")
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		log.Printf("Register lookup failed: %v", err)
		writeError(w, http.StatusInternalServerError, "could not create user")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not create user")
		return
	}

	user := &storage.User{
		Name:         req.Name,
		Email:        strings.ToLower(req.Email),
		PasswordHash: hash,
		Role:         req.Role,
		Phone:        req.Phone,
		Department:   req.Department,
	}
	if err := a.db.CreateUser(r.Context(), user); err != nil {
		log.Printf("Create user failed: %v", err)
		writeError(w, http.StatusInternalServerError, "could not create user")
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPasswordHandler logs a reset link for an active account
// @Summary Request a password reset
// @Description Always returns 200; the reset link is logged server-side for existing accounts
// @Tags auth
// @Accept json
// @Produce json
// @Param request body forgotPasswordRequest true "Account email"
// @Success 200 {object} map[string]string
// @Router /auth/forgot-password [post]
func (a *API) ForgotPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}

	// Do not reveal whether the account exists.
	user, err := a.db.GetUserByEmail(r.Context(), req.Email)
	if err == nil && user.IsActive {
		log.Printf("Password reset requested for %s: /reset-password?user=%s", user.Email, user.ID)
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "If the account exists, a reset link has been sent",
	})
}
