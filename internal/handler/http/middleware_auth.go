package http

import (
	"mime"
	"net/http"
	"strings"

	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/internal/utils"
	"github.com/rs/zerolog"
)

const sessionCookieName = "session_id"

// auth resolves the session token of the request and stores the owning user
// in the context under [utils.UserCtxKey].
//
// Requests without any token are rejected with UNAUTHORIZED; tokens that do
// not resolve to a live session with INVALID_SESSION. Both answer 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := sessionTokenFromRequest(r)
		if token == "" {
			writeServiceError(w, r, ErrNoSessionToken)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.ResolveSession(ctx, token)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		ctx = utils.WithUser(ctx, user, token)

		l := logger.FromContext(ctx)
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", user.ID)
		})

		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}

// sessionTokenFromRequest looks for the session token in the
// Authorization bearer header, the session_id cookie, a form-encoded
// session_id body field and the session_id query parameter, in that order.
func sessionTokenFromRequest(r *http.Request) string {
	if token, ok := bearerToken(r.Header.Get("Authorization")); ok {
		return token
	}

	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	if isFormRequest(r) {
		if token := strings.TrimSpace(r.PostFormValue(sessionCookieName)); token != "" {
			return token
		}
	}

	return strings.TrimSpace(r.URL.Query().Get(sessionCookieName))
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func isFormRequest(r *http.Request) bool {
	if r.Body == nil || r.Method == http.MethodGet {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data"
}
