package httpx

import (
	"context"
	"io"
	"net/http"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/target/ecompanel-ui/internal/ports"
)

const (
	healthResponse = `{"status":"ok"}`
	readyTimeout   = 3 * time.Second
)

// healthHandler returns a simple 200 OK status for liveness checks.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.WriteString(w, healthResponse); err != nil {
		// Nothing more to do if the client connection is gone.
		return
	}
}

// readyHandler probes every dependency concurrently and reports 503 if any fails.
func readyHandler(checks map[string]ports.HealthChecker) http.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		results := make([]string, len(names))
		var g errgroup.Group
		for i, name := range names {
			g.Go(func() error {
				if err := checks[name].Health(ctx); err != nil {
					results[i] = err.Error()
					return err
				}
				results[i] = "ok"
				return nil
			})
		}
		status := http.StatusOK
		overall := "ok"
		if err := g.Wait(); err != nil {
			status = http.StatusServiceUnavailable
			overall = "degraded"
		}

		deps := make(map[string]string, len(names))
		for i, name := range names {
			deps[name] = results[i]
		}
		WriteJSON(w, status, map[string]any{"status": overall, "checks": deps})
	}
}
