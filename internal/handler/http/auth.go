package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/activity-tracker/internal/app"
	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/internal/service"
	"github.com/MKhiriev/activity-tracker/internal/utils"
	"github.com/MKhiriev/activity-tracker/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.ID).Msg("user registered")
	utils.WriteSuccess(w, user, http.StatusCreated)
}

// login answers the session in the body, the Authorization header and the
// session_id cookie, so browser and API clients can both pick it up.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(resp.SessionID, resp.ExpiresAt))
	w.Header().Set("Authorization", "Bearer "+resp.SessionID)

	logger.FromRequest(r).Info().Int64("user_id", resp.User.ID).Msg("user logged in")
	utils.WriteSuccess(w, resp, http.StatusOK)
}

// logout resolves its own token: the route is outside the auth middleware so
// that a dead token is reported as INVALID_SESSION rather than UNAUTHORIZED.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	token := sessionTokenFromRequest(r)
	if token == "" {
		writeServiceError(w, r, service.ErrInvalidSession)
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), token); err != nil {
		writeServiceError(w, r, err)
		return
	}

	http.SetCookie(w, h.expiredSessionCookie())
	utils.WriteSuccess(w, models.MessageResponse{Message: app.MsgLoggedOut}, http.StatusOK)
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.CurrentUser(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccess(w, user, http.StatusOK)
}

func (h *Handler) sessionCookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(h.app.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.app.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *Handler) expiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.app.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
