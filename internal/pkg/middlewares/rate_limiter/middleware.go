package rate_limiter

import (
	"net"
	"net/http"
	"strconv"

	"marketplace/internal/pkg/middlewares/identity"
	"marketplace/internal/pkg/middlewares/metrics"
	"marketplace/pkg/logger"
)

// Middleware ограничивает частоту запросов на каждого вызывающего отдельно.
// Ключ - id пользователя из identity, без него - IP клиента.
func Middleware(log handlerLogger, rateLimiterQPS int, rlimiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			kind, key := callerKey(r)
			if !rlimiter.AllowKey(key) {
				route := metrics.RouteTemplate(r)

				log.With(
					logger.NewField("method", r.Method),
					logger.NewField("path", r.URL.Path),
					logger.NewField("route", route),
					logger.NewField("caller", key),
				).Warn("rate limit exceeded")

				RateLimitExceededTotal.WithLabelValues(r.Method, route, kind).Inc()

				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rateLimiterQPS))
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusTooManyRequests)

				_, err := w.Write([]byte(`{"error":"Too Many Requests","message":"Rate limit exceeded. Try again later."}`))
				if err != nil {
					log.With(
						logger.NewField("error", err),
						logger.NewField("path", r.URL.Path),
					).Error("failed to write rate limit response")
				}
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

const (
	callerUser = "user"
	callerIP   = "ip"
)

// callerKey возвращает вид вызывающего (для метрик) и ключ его bucket.
func callerKey(r *http.Request) (kind, key string) {
	if userID, ok := identity.UserID(r.Context()); ok {
		return callerUser, callerUser + ":" + strconv.FormatInt(userID, 10)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return callerIP, callerIP + ":" + host
}
