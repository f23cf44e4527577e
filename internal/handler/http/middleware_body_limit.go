package http

import "net/http"

// withBodyLimit caps every request body at the configured size. Requests
// exceeding the cap fail inside the JSON decoder with an error the handler
// reports as a bad request.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}
