package guard

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/render"
)

// Recoverer converts any handler panic into a generic JSON 500. The panic
// value and stack go to the log only; callers never see internal detail.
func Recoverer(log *slog.Logger, message string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}

					log.With(
						slog.String("path", r.URL.Path),
						slog.Any("panic", rec),
					).Error("Recovered from handler panic", slog.String("stack", string(debug.Stack())))

					render.Status(r, http.StatusInternalServerError)
					render.JSON(w, r, map[string]string{"error": message})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
