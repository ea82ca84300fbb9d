// Package middle contains middleware for the lexfad tokenize daemon.
package middle

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dekarrin/lexfa/server/result"
)

type mwFunc http.HandlerFunc

func (sf mwFunc) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	sf(w, req)
}

// Middleware wraps a handler with additional functionality.
type Middleware func(next http.Handler) http.Handler

// RequireBearer returns middleware that rejects any request lacking a valid
// HS512 JWT bearer token signed with secret, per the teacher's AuthHandler
// pattern (narrowed here to a single shared secret rather than a per-user
// lookup, since lexfad has no user store).
func RequireBearer(secret []byte, unauthedDelay time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return mwFunc(func(w http.ResponseWriter, req *http.Request) {
			tok, err := bearerToken(req)
			if err == nil {
				_, err = jwt.Parse(tok, func(t *jwt.Token) (interface{}, error) {
					return secret, nil
				}, jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}), jwt.WithIssuer("lexfad"), jwt.WithLeeway(time.Minute))
			}

			if err != nil {
				r := result.Unauthorized("", err.Error())
				time.Sleep(unauthedDelay)
				r.WriteResponse(w)
				return
			}

			next.ServeHTTP(w, req)
		})
	}
}

func bearerToken(req *http.Request) (string, error) {
	authHeader := strings.TrimSpace(req.Header.Get("Authorization"))
	if authHeader == "" {
		return "", fmt.Errorf("no authorization header present")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("authorization header not in Bearer format")
	}

	scheme := strings.TrimSpace(strings.ToLower(parts[0]))
	tok := strings.TrimSpace(parts[1])

	if scheme != "bearer" {
		return "", fmt.Errorf("authorization header not in Bearer format")
	}

	return tok, nil
}

// DontPanic returns middleware that converts a panic in the wrapped handler
// into an HTTP-500 rather than crashing the daemon.
func DontPanic() Middleware {
	return func(next http.Handler) http.Handler {
		return mwFunc(func(w http.ResponseWriter, r *http.Request) {
			defer panicTo500(w)
			next.ServeHTTP(w, r)
		})
	}
}

func panicTo500(w http.ResponseWriter) {
	if panicErr := recover(); panicErr != nil {
		r := result.InternalServerError(fmt.Sprintf("panic: %v\nSTACK TRACE: %s", panicErr, string(debug.Stack())))
		r.WriteResponse(w)
	}
}
