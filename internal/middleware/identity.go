package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/ramoniswack/rent-tent-server/internal/domain"
)

type contextKey string

// userKey carries the acting user's identity through the request context.
const userKey contextKey = "user"

// NewIdentity returns a middleware that reads the acting user from the
// X-User-ID, X-User-Name, and X-User-Avatar request headers and stores the
// resulting UserRef in the request context. A missing or malformed X-User-ID
// yields an anonymous (zero) UserRef rather than an error: reads work fine
// without an identity, and writes simply record no creator snapshot.
func NewIdentity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var user domain.UserRef
			if id, err := uuid.Parse(r.Header.Get("X-User-ID")); err == nil {
				user = domain.UserRef{
					ID:        id,
					Name:      r.Header.Get("X-User-Name"),
					AvatarURL: r.Header.Get("X-User-Avatar"),
				}
			}
			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFrom returns the acting user stored by NewIdentity, or a zero UserRef
// when the middleware did not run or no identity headers were sent.
func UserFrom(ctx context.Context) domain.UserRef {
	user, _ := ctx.Value(userKey).(domain.UserRef)
	return user
}
