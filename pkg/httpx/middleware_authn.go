package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

// ErrMissingToken is passed to the error writer when the request carries no
// usable bearer credential.
var ErrMissingToken = errors.New("httpx: missing bearer token")

// Authenticator resolves a raw bearer token to a principal.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (Principal, error)
}

// ErrorWriter renders an authentication or authorization failure.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// BearerToken extracts the token from "Authorization: Bearer <token>". The
// scheme is matched case-insensitively.
func BearerToken(r *http.Request) (string, error) {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrMissingToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

// AuthnMiddleware requires a valid bearer token. On success the principal is
// stored in the request context and the request logger gains user_id.
func AuthnMiddleware(a Authenticator, onError ErrorWriter) Middleware {
	if onError == nil {
		onError = defaultAuthError
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw, err := BearerToken(r)
			if err != nil {
				onError(w, r, err)
				return
			}

			p, err := a.Authenticate(ctx, raw)
			if err != nil {
				slogx.FromContext(ctx).Warn("bearer authentication failed", "err", err)
				onError(w, r, err)
				return
			}

			ctx = WithPrincipal(ctx, p)
			ctx = slogx.With(ctx, "user_id", p.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Require runs check against the authenticated principal and rejects the
// request through onError when it fails. It must sit behind AuthnMiddleware.
func Require(check func(Principal) error, onError ErrorWriter) Middleware {
	if onError == nil {
		onError = defaultAuthError
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFrom(r.Context())
			if !ok {
				onError(w, r, ErrMissingToken)
				return
			}
			if err := check(p); err != nil {
				onError(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SetBearerChallenge sets an RFC 6750 WWW-Authenticate header.
func SetBearerChallenge(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
}

func defaultAuthError(w http.ResponseWriter, _ *http.Request, err error) {
	if errors.Is(err, ErrMissingToken) {
		SetBearerChallenge(w, "missing bearer token")
	} else {
		SetBearerChallenge(w, "token verification failed")
	}
	WriteError(w, http.StatusUnauthorized, "invalid_token", "authentication required")
}
