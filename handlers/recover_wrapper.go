package handlers

import (
	"log/slog"
	"net/http"
	"runtime"
)

// RecoverWrapper wraps an http.HandlerFunc with panic recovery
func RecoverWrapper(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				stack := make([]byte, 8*1024)
				stack = stack[:runtime.Stack(stack, false)]
				slog.Error("panic recovered",
					"error", rec,
					"path", r.URL.Path,
					"stack", string(stack),
				)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()

		handler(w, r)
	}
}
