// Package middleware provides HTTP middleware for the GQSS API.
package middleware

import (
	"log"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Logger logs one line per request: the request ID assigned upstream, the
// method and path, the response status, bytes written and elapsed time.
func Logger(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			log.Printf("[%s] %s %s %d %dB %v",
				chimiddleware.GetReqID(r.Context()),
				r.Method, r.URL.Path,
				ww.Status(), ww.BytesWritten(), time.Since(start))
		}()

		next.ServeHTTP(ww, r)
	}
	return http.HandlerFunc(fn)
}
