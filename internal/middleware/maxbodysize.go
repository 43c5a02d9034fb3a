package middleware

import "net/http"

// NewMaxBodySizeHandler returns a middleware that limits incoming
// request bodies to limit bytes. A request advertising a larger
// Content-Length is rejected with 413 before any body bytes are read;
// requests without a declared length are wrapped in http.MaxBytesReader
// so the downstream body read fails once the limit is exceeded.
//
// Import payloads carry inline attachment data, so the limit should be
// configured generously (see config.Config.MaxBodyBytes).
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
