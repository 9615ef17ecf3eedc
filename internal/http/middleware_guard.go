package httpx

import (
	"log/slog"
	"net/http"

	"github.com/target/ecompanel-ui/internal/domain/access"
	"github.com/target/ecompanel-ui/internal/observability/statsd"
)

const (
	loginPath = access.LoginPath
	adminPath = access.HomePath
)

// GuardConfig configures RouteGuard.
type GuardConfig struct {
	CookieName string
	Logger     *slog.Logger
	Metrics    statsd.Sink // optional
}

// RouteGuard applies access.Decide to every request it wraps. Mount it only on
// /admin, /admin/... and /login.
//
// The token is whatever the session cookie holds; an unreadable or empty
// cookie counts as absent. Redirects are 303 See Other, or 204 with
// HX-Redirect for htmx requests so the whole page navigates.
func RouteGuard(cfg GuardConfig) Middleware {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "route_guard")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := readToken(r, cfg.CookieName)
			decision := access.Decide(r.URL.Path, token)

			if cfg.Metrics != nil {
				cfg.Metrics.Count("guard.decision", 1, map[string]string{"decision": decision.String()})
			}
			logger.DebugContext(r.Context(), "route guard decision",
				slog.String("path", r.URL.Path),
				slog.String("decision", decision.String()),
				slog.Bool("token_present", token != ""),
			)

			if !decision.IsRedirect() {
				next.ServeHTTP(w, r)
				return
			}
			Redirect(w, r, decision.Location())
		})
	}
}

// readToken returns the session token from the cookie store, or "" when the
// cookie is missing or cannot be read.
func readToken(r *http.Request, cookieName string) string {
	if cookieName == "" {
		return ""
	}
	return readCookie(r, cookieName)
}
