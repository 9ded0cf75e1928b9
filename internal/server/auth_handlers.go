package server

import (
	"encoding/json"
	"net/http"

	"github.com/campuscode/auth-service/internal/cookie"
	"github.com/campuscode/auth-service/internal/googleauth"
	jsonwriter "github.com/campuscode/auth-service/internal/json"
	"github.com/campuscode/auth-service/internal/log"
	"github.com/campuscode/auth-service/internal/session"
	"github.com/campuscode/auth-service/internal/storage"
	"github.com/campuscode/auth-service/internal/users"
)

// Fixed client-facing messages. Distinct failure causes deliberately
// collapse into one so internal error shapes never leak.
const (
	msgTokenRequired = "Token is required"
	msgInvalidToken  = "Invalid Google token"
	msgLoggedOut     = "Logged out successfully"
	msgUnauthorized  = "Unauthorized"
)

// AuthHandlers provides the login/logout HTTP handlers with dependency
// injection
type AuthHandlers struct {
	verifier googleauth.Verifier
	users    *users.Service
	sessions *session.Issuer
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(verifier googleauth.Verifier, users *users.Service, sessions *session.Issuer) *AuthHandlers {
	return &AuthHandlers{
		verifier: verifier,
		users:    users,
		sessions: sessions,
	}
}

type loginRequest struct {
	Token string `json:"token"`
}

type userResponse struct {
	User *storage.User `json:"user"`
}

// GoogleLoginHandler verifies a Google ID token, provisions the user
// and sets the session cookie. The response body carries only public
// user fields, never the signed token.
func (h *AuthHandlers) GoogleLoginHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		jsonwriter.WriteBadRequest(w, msgTokenRequired)
		return
	}

	identity, err := h.verifier.Verify(ctx, req.Token)
	if err != nil {
		jsonwriter.WriteUnauthorized(w, msgInvalidToken)
		return
	}

	user, err := h.users.FindOrCreate(ctx, identity.GoogleID, identity.Email, identity.Name)
	if err != nil {
		log.LogErrorWithFields("auth", "User provisioning failed", map[string]any{
			"error": err.Error(),
		})
		jsonwriter.WriteUnauthorized(w, msgInvalidToken)
		return
	}

	token, err := h.sessions.Issue(user.ID)
	if err != nil {
		log.LogErrorWithFields("auth", "Session issuing failed", map[string]any{
			"error": err.Error(),
		})
		jsonwriter.WriteUnauthorized(w, msgInvalidToken)
		return
	}

	cookie.SetUserSession(w, token)
	_ = jsonwriter.Write(w, userResponse{User: user})
}

// LogoutHandler clears both session cookies. It requires no
// authentication: logging out a caller with no session is a no-op that
// still reports success.
func (h *AuthHandlers) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	cookie.ClearUserSession(w)
	cookie.ClearAdminSession(w)
	_ = jsonwriter.Write(w, map[string]string{"message": msgLoggedOut})
}

// MeHandler returns the user for the current session cookie.
func (h *AuthHandlers) MeHandler(w http.ResponseWriter, r *http.Request) {
	token, err := cookie.GetUserSession(r)
	if err != nil {
		jsonwriter.WriteUnauthorized(w, msgUnauthorized)
		return
	}

	claims, err := h.sessions.Parse(token)
	if err != nil {
		jsonwriter.WriteUnauthorized(w, msgUnauthorized)
		return
	}

	user, err := h.users.FindByID(r.Context(), claims.UserID)
	if err != nil {
		jsonwriter.WriteUnauthorized(w, msgUnauthorized)
		return
	}

	_ = jsonwriter.Write(w, userResponse{User: user})
}

// Routes mounts the auth endpoints and health check on a new mux.
func Routes(h *AuthHandlers) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/google", h.GoogleLoginHandler)
	mux.HandleFunc("POST /api/auth/logout", h.LogoutHandler)
	mux.HandleFunc("GET /api/auth/me", h.MeHandler)
	mux.HandleFunc("GET /api/health", HealthHandler)
	return mux
}
