package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strings"

	"github.com/raushankrgupta/ayush-ai/models"
	"github.com/raushankrgupta/ayush-ai/store"
	"github.com/raushankrgupta/ayush-ai/utils"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// SignupRequest represents the payload for user registration
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the payload for user login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by every successful sign-in.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Signup handles user registration
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(r.Context(), h.logger, &logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Signup API]")

	var req SignupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.RespondError(w, &logMessageBuilder, "Name, Email and Password are required", http.StatusBadRequest)
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid email address", http.StatusBadRequest)
		return
	}
	if len(req.Password) < MinPasswordLength {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Password must be at least %d characters", MinPasswordLength), http.StatusBadRequest)
		return
	}

	// Check if user already exists
	_, err := h.store.FindUserByEmail(r.Context(), req.Email)
	if err == nil {
		utils.RespondError(w, &logMessageBuilder, "User with this email already exists", http.StatusConflict)
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Database error checking user: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Database error checking user", http.StatusInternalServerError)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to hash password: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to hash password", http.StatusInternalServerError)
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Provider: models.ProviderCredentials,
	}
	if err := h.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			utils.RespondError(w, &logMessageBuilder, "User with this email already exists", http.StatusConflict)
			return
		}
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to create user: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to create user", http.StatusInternalServerError)
		return
	}

	h.sendWelcome(r, &logMessageBuilder, user)

	token, err := h.tokens.GenerateToken(user.ID.Hex())
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to generate token: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "User registered successfully")
	utils.RespondJSON(w, http.StatusCreated, AuthResponse{Token: token, User: user})
}

// sendWelcome mails a greeting. Failures are logged and otherwise ignored.
func (h *Handler) sendWelcome(r *http.Request, b *strings.Builder, user *models.User) {
	if h.mailer == nil {
		return
	}
	err := h.mailer.Send(r.Context(), utils.Email{
		ToName:  user.Name,
		ToEmail: user.Email,
		Subject: "Welcome to Ayush AI",
		Text:    fmt.Sprintf("Namaste %s, your account is ready. Complete the questionnaire to discover your dosha.", user.Name),
		HTML:    fmt.Sprintf("<h1>Namaste %s</h1><p>Your account is ready. Complete the questionnaire to discover your dosha.</p>", user.Name),
	})
	switch {
	case errors.Is(err, utils.ErrMailerDisabled):
	case err != nil:
		utils.AddToLogMessage(b, fmt.Sprintf("Failed to send welcome email: %v", err))
	}
}

// Login handles user login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(r.Context(), h.logger, &logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Login API]")

	var req LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.RespondError(w, &logMessageBuilder, "Email and Password are required", http.StatusBadRequest)
		return
	}

	user, err := h.store.FindUserByEmail(r.Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondError(w, &logMessageBuilder, "Invalid email or password", http.StatusUnauthorized)
		return
	} else if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Database error: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Database error", http.StatusInternalServerError)
		return
	}

	// OAuth-only accounts have no password
	if user.Password == "" {
		utils.RespondError(w, &logMessageBuilder, "Invalid email or password", http.StatusUnauthorized)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	token, err := h.tokens.GenerateToken(user.ID.Hex())
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to generate token: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Login successful")
	utils.RespondJSON(w, http.StatusOK, AuthResponse{Token: token, User: user})
}
