package http

import (
	"context"
	"net/http"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const SessionHeader = "X-Session-ID"

type sessionKey struct{}

// SessionFromCtx возвращает id сессии, выставленный SessionMiddleware.
func SessionFromCtx(ctx context.Context) string {
	sid, _ := ctx.Value(sessionKey{}).(string)
	return sid
}

// SessionMiddleware берет id сессии из cookie или заголовка X-Session-ID
// и создает новую сессию, если id нет или он не UUID.
func SessionMiddleware(store *cfg.StoreCfg) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid := r.Header.Get(SessionHeader)
			if sid == "" {
				if c, err := r.Cookie(store.SessionCookie); err == nil {
					sid = c.Value
				}
			}

			if _, err := uuid.Parse(sid); err != nil {
				sid = uuid.NewString()
			}

			http.SetCookie(w, &http.Cookie{
				Name:     store.SessionCookie,
				Value:    sid,
				Path:     "/",
				MaxAge:   int(store.SessionTTL.Seconds()),
				HttpOnly: true,
				Secure:   store.SecureCookie,
				SameSite: http.SameSiteLaxMode,
			})
			w.Header().Set(SessionHeader, sid)

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, sid)))
		})
	}
}

// LoggingMiddleware пишет в лог метод, путь, код ответа и длительность запроса.
func LoggingMiddleware(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			msg := "%s %s %d %s request_id=%s"
			args := []any{r.Method, r.URL.Path, status, time.Since(start), middleware.GetReqID(r.Context())}
			switch {
			case status >= http.StatusInternalServerError:
				log.Warnf(msg, args...)
			default:
				log.Debugf(msg, args...)
			}
		})
	}
}
