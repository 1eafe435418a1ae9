// internal/adapters/in/http/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
)

// FirebaseAuthClient is an alias so callers can take the verifier by
// *middleware.FirebaseAuthClient without importing firebase themselves.
type FirebaseAuthClient = fbauth.Client

// Claims is the externally verified identity attached to a request:
// the user id (token subject) plus an optional email. It is immutable and
// travels through the request context only, never through shared state.
type Claims struct {
	UserID string
	Email  string
}

// context key uses a private type to avoid collisions (SA1029).
type ctxKey struct{ name string }

var ctxKeyClaims = ctxKey{name: "claims"}

// Auth verifies "Authorization: Bearer <ID_TOKEN>" and injects Claims into
// the request context. A missing or unverifiable identity ends the request
// with 401 before any business logic runs.
type Auth struct {
	FirebaseAuth *FirebaseAuthClient
}

func (m *Auth) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m == nil || m.FirebaseAuth == nil {
			writeAuthErr(w, http.StatusServiceUnavailable, "auth middleware not initialized")
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeAuthErr(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		idToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if idToken == "" {
			writeAuthErr(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token, err := m.FirebaseAuth.VerifyIDToken(r.Context(), idToken)
		if err != nil {
			log.Printf("[auth] token verification failed path=%s err=%v", r.URL.Path, err)
			writeAuthErr(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		uid := strings.TrimSpace(token.UID)
		if uid == "" {
			writeAuthErr(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims := Claims{UserID: uid}
		if emailRaw, ok := token.Claims["email"]; ok {
			if e, ok2 := emailRaw.(string); ok2 {
				claims.Email = strings.TrimSpace(e)
			}
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// WithClaims returns ctx carrying the given claims. Exposed so tests can
// exercise handlers without a real token verifier.
func WithClaims(ctx context.Context, c Claims) context.Context {
	return context.WithValue(ctx, ctxKeyClaims, c)
}

// CurrentClaims returns the verified claims for this request, if any.
func CurrentClaims(r *http.Request) (Claims, bool) {
	v := r.Context().Value(ctxKeyClaims)
	if v == nil {
		return Claims{}, false
	}
	c, ok := v.(Claims)
	if !ok || strings.TrimSpace(c.UserID) == "" {
		return Claims{}, false
	}
	return c, true
}

func writeAuthErr(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"data": nil, "error": msg})
}
