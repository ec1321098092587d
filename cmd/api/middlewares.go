package main

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"cinescope/proj/internal/services/auth"

	"golang.org/x/time/rate"
)

func (app *Application) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil && err != http.ErrAbortHandler {
				app.Http.ServerError(w, r, err.(error), "")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (app *Application) RateLimiter(next http.Handler) http.Handler {
	const op = "middlewares.RateLimiter"
	log := app.log.With("op", op)
	type client struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}
	clients := make(map[string]*client)
	var mu sync.Mutex
	go func() {
		for {
			mu.Lock()
			for ip, client := range clients {
				if time.Since(client.lastSeen) > 5*time.Minute {
					delete(clients, ip)
				}
			}
			mu.Unlock()
			time.Sleep(5 * time.Minute)
		}
	}()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.cfg.Limiter.Enabled {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				app.Http.ServerError(w, r, err, "")
				return
			}
			mu.Lock()
			c, ok := clients[ip]
			if !ok {
				c = &client{limiter: rate.NewLimiter(rate.Limit(app.cfg.Limiter.Rps), app.cfg.Limiter.Burst)}
				clients[ip] = c
			}
			c.lastSeen = time.Now()
			mu.Unlock()
			if !c.limiter.Allow() {
				log.Warn("rate limit exceeded", "ip", ip)
				app.Http.Response(
					w, r,
					envelop{"error": "rate limit exceeded"},
					"Can't process request see an error below.",
					http.StatusTooManyRequests,
				)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

type CtxKey string

const CtxKeyUser CtxKey = "user"

// Authenticate is pure token verification: it never touches the database, so
// a user deleted after issuance still passes until the token expires.
func (app *Application) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const bearerPrefix = "Bearer "
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) || len(authHeader) == len(bearerPrefix) {
			app.Http.Unauthorized(w, r, "Invalid Authorization header, should be 'Bearer <token>'")
			return
		}
		token := strings.TrimPrefix(authHeader, bearerPrefix)
		claims, err := app.services.Auth.VerifyToken(token)
		if err != nil {
			app.log.Warn("token verification failed", "error", err.Error())
			app.Http.Unauthorized(w, r, "Invalid or expired token")
			return
		}
		r = r.WithContext(context.WithValue(r.Context(), CtxKeyUser, claims))
		next.ServeHTTP(w, r)
	})
}

// authenticatedUser returns the claims attached by Authenticate. Handlers
// behind the middleware can rely on a non-nil result.
func (app *Application) authenticatedUser(r *http.Request) *auth.Claims {
	claims, _ := r.Context().Value(CtxKeyUser).(*auth.Claims)
	return claims
}
