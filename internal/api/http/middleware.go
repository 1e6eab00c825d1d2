package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/TangibleTNFT/tangible-marketplace/internal/metrics"
	"github.com/TangibleTNFT/tangible-marketplace/internal/security"

	"github.com/gorilla/mux"
)

type callerKey struct{}

// CallerAddress returns the authenticated wallet address stored by the auth
// middleware, or "" for unauthenticated requests.
func CallerAddress(ctx context.Context) string {
	addr, _ := ctx.Value(callerKey{}).(string)
	return addr
}

// AuthMiddleware validates the bearer token and stores the caller address
// in the request context. Handlers pass that address into the service layer
// explicitly.
func AuthMiddleware(tokens security.TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				respondJSON(w, http.StatusUnauthorized, errorBody{Error: "missing bearer token", Code: "UNAUTHENTICATED"})
				return
			}
			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				respondJSON(w, http.StatusUnauthorized, errorBody{Error: err.Error(), Code: "UNAUTHENTICATED"})
				return
			}
			ctx := context.WithValue(r.Context(), callerKey{}, claims.Address)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware records request counts and latency per route template.
func MetricsMiddleware(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if tmpl, err := current.GetPathTemplate(); err == nil {
					route = tmpl
				}
			}
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rec, r)
			m.HTTPRequestSeconds.WithLabelValues(route).Observe(time.Since(start).Seconds())
			m.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(rec.status/100*100)).Inc()
		})
	}
}
