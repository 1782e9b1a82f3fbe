package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"onebeat/scout/pkg/server/types"
)

// Timeout enforces a per-request deadline. When exceeded, the request
// context is cancelled and a 504 is returned. A zero timeout disables
// the middleware.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			done := make(chan struct{})

			go func() {
				defer close(done)
				next.ServeHTTP(w, r.WithContext(ctx))
			}()

			select {
			case <-done:
				return

			case <-ctx.Done():
				if ctx.Err() == context.DeadlineExceeded {
					errResp := types.NewGatewayTimeoutError(
						"Request timeout: the request took too long to complete",
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusGatewayTimeout)
					_ = json.NewEncoder(w).Encode(errResp)
				}
			}
		})
	}
}
