// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"vuttr_backend/internal/app/api"
	"vuttr_backend/internal/feature/auth/domain/entity"
	"vuttr_backend/internal/feature/auth/transport/http/dto"
	"vuttr_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the usecase operations the handlers depend on.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new user and returns it with a credential token.
	Signup(ctx context.Context, name, email, password string) (*entity.User, string, error)
	// Login authenticates a user and returns it with a credential token.
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	// ListUsers returns every registered user.
	ListUsers(ctx context.Context) ([]entity.User, error)
}

// AuthHandler handles HTTP requests for signup, login and the user listing.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler with the injected usecase.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles POST /users/signup.
// - 470 when the request body fails validation
// - 471 when the email is already registered
// - 500 on storage failure (no internal detail leaks to the caller)
// - 201 with {userId, name, token} on success
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(api.StatusInvalidParameters, api.MessageResponse{Message: "Invalid parameters. Please check the data you informed."})
		return
	}

	user, token, err := h.auth.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		slog.Warn("signup rejected, email exists", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(api.StatusEmailExists, api.MessageResponse{Message: "Email already exists, please login instead."})
		return
	case errors.Is(err, usecase.ErrWeakPassword):
		c.JSON(api.StatusInvalidParameters, api.MessageResponse{Message: "Invalid parameters. Please check the data you informed."})
		return
	case err != nil:
		slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "Sign up failed, please try again later."})
		return
	}

	slog.Info("user signup successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.AuthResp{UserID: user.ID, Name: user.Name, Token: token})
}

// Login handles POST /users/login.
// - 470 when the request body fails validation
// - 401 on bad credentials (unknown email and wrong password are indistinguishable)
// - 500 on storage failure
// - 202 with {userId, name, token} on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(api.StatusInvalidParameters, api.MessageResponse{Message: "Invalid parameters. Please check the data you informed."})
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		slog.Warn("login failed", "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.MessageResponse{Message: "Could not log you in. Invalid credentials."})
		return
	case err != nil:
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "Logging in failed, please try again."})
		return
	}

	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusAccepted, dto.AuthResp{UserID: user.ID, Name: user.Name, Token: token})
}

// ListUsers handles GET /users/all. Password hashes never appear in the
// response.
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.auth.ListUsers(c.Request.Context())
	if err != nil {
		slog.Error("user listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "Accessing database failed, please try again."})
		return
	}

	out := make([]dto.UserItem, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserItem{UserID: u.ID, Name: u.Name, Email: u.Email})
	}
	c.JSON(http.StatusOK, dto.UsersResp{Users: out})
}
