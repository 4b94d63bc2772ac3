package api

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/raushankrgupta/ayush-ai/models"
	"github.com/raushankrgupta/ayush-ai/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const oauthStateCookie = "oauth_state"

// GoogleOAuthConfig builds the OAuth2 config for Google sign-in, or nil when
// no client id is configured.
func GoogleOAuthConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	if clientID == "" {
		return nil
	}
	return &oauth2.Config{
		RedirectURL:  redirectURL,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
		Endpoint:     google.Endpoint,
	}
}

type googleUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GoogleLogin handles the login request by redirecting to Google
func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(r.Context(), h.logger, &logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Google Login API]")

	if h.oauth == nil {
		utils.RespondError(w, &logMessageBuilder, "Google sign-in is not configured", http.StatusServiceUnavailable)
		return
	}

	state, err := randomState()
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to start sign-in", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/auth/google",
		Expires:  h.now().Add(10 * time.Minute),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	utils.AddToLogMessage(&logMessageBuilder, "Redirecting to Google Auth")
	http.Redirect(w, r, h.oauth.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// GoogleCallback handles the callback from Google
func (h *Handler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(r.Context(), h.logger, &logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Google Callback API]")

	if h.oauth == nil {
		utils.RespondError(w, &logMessageBuilder, "Google sign-in is not configured", http.StatusServiceUnavailable)
		return
	}

	cookie, err := r.Cookie(oauthStateCookie)
	if err != nil || cookie.Value == "" || r.FormValue("state") != cookie.Value {
		utils.RespondError(w, &logMessageBuilder, "State invalid", http.StatusBadRequest)
		return
	}
	http.SetCookie(w, &http.Cookie{Name: oauthStateCookie, Path: "/auth/google", MaxAge: -1})

	code := r.FormValue("code")
	if code == "" {
		utils.RespondError(w, &logMessageBuilder, "Code not found", http.StatusBadRequest)
		return
	}

	token, err := h.oauth.Exchange(r.Context(), code)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to exchange token: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to exchange token", http.StatusInternalServerError)
		return
	}

	resp, err := h.oauth.Client(r.Context(), token).Get(h.googleUserInfo)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to get user info: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to get user info", http.StatusInternalServerError)
		return
	}
	defer resp.Body.Close()

	var info googleUser
	if resp.StatusCode != http.StatusOK {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("User info status %d", resp.StatusCode))
		utils.RespondError(w, &logMessageBuilder, "Failed to get user info", http.StatusInternalServerError)
		return
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil || info.Email == "" {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to read user info response: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to read user info", http.StatusInternalServerError)
		return
	}
	utils.AddToLogMessage(&logMessageBuilder, "Successfully retrieved user info from Google")

	user, err := h.store.UpsertOAuthUser(r.Context(), info.Email, info.Name, info.Picture, models.ProviderAccount{
		Provider:          models.ProviderGoogle,
		ProviderAccountID: info.ID,
	})
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to save user: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to save user", http.StatusInternalServerError)
		return
	}

	jwtToken, err := h.tokens.GenerateToken(user.ID.Hex())
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to generate token: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	utils.RespondJSON(w, http.StatusOK, AuthResponse{Token: jwtToken, User: user})
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
