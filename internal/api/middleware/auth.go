package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
	sessionService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/session"
)

const (
	msgMissingToken = "токен сесії відсутній"
	msgInvalidToken = "сесія недійсна або прострочена"
	msgStaffOnly    = "операція доступна лише персоналу"

	// SessionCookie назва cookie з токеном сесії
	SessionCookie = "session_token"
)

// SessionAuthenticator інтерфейс перевірки токена сесії
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
}

// Logger інтерфейс для логування
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type contextKey struct{}

var sessionKey contextKey

// Auth middleware перевірки сесії для захищених маршрутів
type Auth struct {
	sessions SessionAuthenticator
	logger   Logger
}

// NewAuth створює middleware аутентифікації
func NewAuth(sessions SessionAuthenticator, logger Logger) *Auth {
	return &Auth{sessions: sessions, logger: logger}
}

// RequireSession пропускає лише запити з дійсною сесією.
// Сесія кладеться в контекст запиту.
func (a *Auth) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		sess, err := a.sessions.Authenticate(r.Context(), token)
		if err != nil {
			if errors.Is(err, sessionService.ErrSessionNotFound) {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}
			a.logger.Error("auth: session lookup failed: %v", err)
			handlers.RespondInternalError(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
	})
}

// RequireStaff пропускає лише staff-сесії. Застосовується поверх RequireSession.
func (a *Auth) RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFromContext(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}
		if !sess.IsStaff {
			a.logger.Warn("auth: user=%d is not staff", sess.UserID)
			handlers.RespondForbidden(w, msgStaffOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithSession кладе сесію в контекст
func WithSession(ctx context.Context, sess *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// SessionFromContext дістає сесію з контексту запиту
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*domain.Session)
	return sess, ok
}

// extractToken читає токен з заголовка Authorization або cookie
func extractToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		if token, found := strings.CutPrefix(auth, "Bearer "); found {
			return token
		}
	}
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}
