package timeout

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Middleware ограничивает время обработки запроса. Для маршрутов из
// overrides (ключ - шаблон пути mux, например /drafts/{draft_id}/submit)
// берется свой лимит. Работает только как mux-middleware: маршрут к этому
// моменту уже сопоставлен.
func Middleware(defaultTimeout time.Duration, overrides map[string]time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// r.Context() = ongoingCtx (из BaseContext)
			ctx, cancel := context.WithTimeout(r.Context(), routeTimeout(r, defaultTimeout, overrides))
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func routeTimeout(r *http.Request, defaultTimeout time.Duration, overrides map[string]time.Duration) time.Duration {
	route := mux.CurrentRoute(r)
	if route == nil {
		return defaultTimeout
	}
	tpl, err := route.GetPathTemplate()
	if err != nil {
		return defaultTimeout
	}
	if d, ok := overrides[tpl]; ok && d > 0 {
		return d
	}
	return defaultTimeout
}
