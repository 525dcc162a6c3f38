package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/meaeduarda/cronossolutions/internal/domain"
)

const VisitorCookie = "cronos_visitor"

type visitContextKey struct{}

// VisitInfo is what LastVisit stores in the request context.
type VisitInfo struct {
	VisitorID string
	Previous  *domain.Visit
}

// LastVisit identifies the visitor by cookie and records the visit. Store
// failures are logged and never block the page.
func LastVisit(repo domain.VisitRepository, logger zerolog.Logger, now func() time.Time) func(http.Handler) http.Handler {
	if now == nil {
		now = time.Now
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := VisitorID(r)
			if id == "" {
				id = uuid.NewString()
			}
			http.SetCookie(w, &http.Cookie{
				Name:     VisitorCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   int((365 * 24 * time.Hour).Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			info := VisitInfo{VisitorID: id}
			prev, err := repo.Touch(r.Context(), id, now())
			if err != nil {
				logger.Warn().Err(err).Str("request_id", RequestIDFromContext(r.Context())).Msg("last visit not recorded")
			} else {
				info.Previous = prev
			}

			ctx := context.WithValue(r.Context(), visitContextKey{}, info)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// VisitorID returns the visitor id carried by the request cookie, or ""
// when the cookie is missing or not a UUID.
func VisitorID(r *http.Request) string {
	c, err := r.Cookie(VisitorCookie)
	if err != nil {
		return ""
	}
	parsed, err := uuid.Parse(c.Value)
	if err != nil {
		return ""
	}
	return parsed.String()
}

// VisitFromContext returns the visit recorded for this request.
func VisitFromContext(ctx context.Context) (VisitInfo, bool) {
	v, ok := ctx.Value(visitContextKey{}).(VisitInfo)
	return v, ok
}
