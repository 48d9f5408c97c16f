package http

import (
	"compress/gzip"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
)

// withGZip compresses JSON responses for clients that accept gzip and
// inflates request bodies sent with Content-Encoding: gzip.
func withGZip(next http.Handler) http.Handler {
	return middleware.Compress(5, "application/json")(inflateRequest(next))
}

func inflateRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zr, err := gzip.NewReader(r.Body)
		if err != nil {
			http.Error(w, "Invalid gzip data", http.StatusBadRequest)
			return
		}
		defer zr.Close()

		r.Body = zr
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1
		next.ServeHTTP(w, r)
	})
}
