package http

import (
	"context"
	"net/http"
	"time"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/google/uuid"
)

type sessionCtxKey struct{}

// Sessions выдаёт анонимную сессию покупателя через HttpOnly-cookie с uuid.
type Sessions struct {
	cookieName string
	ttl        time.Duration
}

func NewSessions(cookieName string, ttl time.Duration) *Sessions {
	return &Sessions{cookieName: cookieName, ttl: ttl}
}

// Middleware кладёт идентификатор сессии в контекст запроса.
// Отсутствующая или испорченная cookie заменяется новой сессией.
// Срок жизни cookie продлевается при каждом запросе.
func (s *Sessions) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := s.read(r)
		if err != nil {
			sessionID = uuid.NewString()
		}

		s.write(w, sessionID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionCtxKey{}, sessionID)))
	})
}

// Expire удаляет cookie сессии у клиента.
func (s *Sessions) Expire(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Sessions) read(r *http.Request) (string, error) {
	cookie, err := r.Cookie(s.cookieName)
	if err != nil {
		return "", err
	}

	id, err := uuid.Parse(cookie.Value)
	if err != nil {
		return "", e.Wrap(cookie.Value, e.ErrInvalidSessionID)
	}

	return id.String(), nil
}

func (s *Sessions) write(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionFromContext возвращает идентификатор сессии, выданный Middleware.
func SessionFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionCtxKey{}).(string)
	return id
}
