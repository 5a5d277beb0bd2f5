package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/verity-api/pkg/metrics"
)

type routeKey struct{}

// routeLabel is filled by the router once a route matches, so metrics carry the
// pattern instead of the raw path.
type routeLabel struct {
	pattern string
}

const unmatchedRoute = "unmatched"

// MetricsMiddleware records request counts and latency per route pattern.
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			label := &routeLabel{pattern: unmatchedRoute}
			r = r.WithContext(context.WithValue(r.Context(), routeKey{}, label))

			lrw := newLoggingResponseWriter(w)
			start := time.Now()

			next.ServeHTTP(lrw, r)

			metrics.HTTPRequestDuration.WithLabelValues(r.Method, label.pattern).Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.WithLabelValues(r.Method, label.pattern, strconv.Itoa(lrw.statusCode)).Inc()
		})
	}
}

// SetRoutePattern names the matched route for MetricsMiddleware.
func SetRoutePattern(ctx context.Context, pattern string) {
	if label, ok := ctx.Value(routeKey{}).(*routeLabel); ok {
		label.pattern = pattern
	}
}
