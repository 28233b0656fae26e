package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"alexportfolio/auth"
	"alexportfolio/models"
	"alexportfolio/repository"
)

type UserHandler struct {
	Repo   repository.UserRepository
	Tokens *auth.TokenManager
	Logger *slog.Logger
}

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Signup handler: public, always creates a plain user.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "invalid request method")
		return
	}

	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	h.createUser(w, r, req, models.RoleUser)
}

// CreateAdmin handler: open only until the first admin exists, after which
// it demands an admin bearer token.
func (h *UserHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "invalid request method")
		return
	}

	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	admins, err := h.Repo.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		h.Logger.Error("failed to count admins", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	if admins > 0 {
		claims, err := bearerClaims(r, h.Tokens)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		if claims.Role != models.RoleAdmin {
			writeError(w, http.StatusForbidden, "admin only")
			return
		}
	}

	h.createUser(w, r, req, models.RoleAdmin)
}

func (h *UserHandler) createUser(w http.ResponseWriter, r *http.Request, req *credentialsRequest, role string) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.Logger.Error("failed to hash password", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	id, err := h.Repo.CreateUser(ctx, req.Username, hash, role)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			writeError(w, http.StatusConflict, "username already exists")
			return
		}
		h.Logger.Error("failed to create user", "username", req.Username, "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	h.Logger.Info("user created", "user_id", id, "role", role)
	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

// Login handler
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "invalid request method")
		return
	}

	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	user, err := h.Repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		h.Logger.Error("failed to fetch user", "username", req.Username, "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	// An unknown username and a wrong password produce the same answer.
	if user == nil || !auth.VerifyPassword(req.Password, user.PasswordHash) {
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	token, err := h.Tokens.Issue(user.ID, user.Role)
	if err != nil {
		h.Logger.Error("failed to issue token", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	h.Logger.Info("login successful", "user_id", user.ID)
	writeJSON(w, http.StatusOK, loginResponse{Token: token, Role: user.Role})
}

// ListUsers handler: admin only, wired behind RequireAuth+RequireAdmin.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "invalid request method")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	users, err := h.Repo.ListUsers(ctx)
	if err != nil {
		h.Logger.Error("failed to list users", "error", err)
		writeError(w, http.StatusInternalServerError, "cannot fetch users")
		return
	}
	if users == nil {
		users = []models.UserInfo{}
	}

	writeJSON(w, http.StatusOK, users)
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (*credentialsRequest, bool) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return nil, false
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return nil, false
	}
	return &req, true
}
