// Command gqss-server provides a REST API for GQSS alignment operations.
//
// Usage:
//
//	gqss-server [options]
//
// Options:
//
//	-port     Port to listen on (default: 8080)
//	-host     Host to bind to (default: localhost)
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gqss-bio/gqss-go/api/handlers"
	"github.com/gqss-bio/gqss-go/api/middleware"
)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	host := flag.String("host", "localhost", "Host to bind to")
	flag.Parse()

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Alignment endpoints
		r.Route("/align", func(r chi.Router) {
			r.Post("/local", handlers.LocalAlignHandler)
			r.Post("/search", handlers.SearchHandler)
			r.Post("/score", handlers.AlignmentScoreHandler)
		})

		// Sequence endpoints
		r.Route("/sequence", func(r chi.Router) {
			r.Post("/complement", handlers.ComplementHandler)
			r.Post("/reverse-complement", handlers.ReverseComplementHandler)
			r.Post("/validate", handlers.ValidateHandler)
		})

		// Quality endpoints
		r.Route("/quality", func(r chi.Router) {
			r.Post("/stats", handlers.QualityStatsHandler)
		})

		// Substitution matrix endpoints
		r.Route("/matrix", func(r chi.Router) {
			r.Post("/score", handlers.MatrixScoreHandler)
		})
	})

	// Home page
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>GQSS API</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 2rem auto; padding: 0 1rem; }
        h1 { color: #2563eb; }
        pre { background: #f3f4f6; padding: 1rem; border-radius: 0.5rem; overflow-x: auto; }
        .endpoint { margin: 1rem 0; padding: 1rem; border: 1px solid #e5e7eb; border-radius: 0.5rem; }
        .method { display: inline-block; padding: 0.25rem 0.5rem; background: #10b981; color: white; border-radius: 0.25rem; font-size: 0.875rem; }
    </style>
</head>
<body>
    <h1>GQSS API</h1>
    <p>A REST API for EDNAFULL-scored Smith-Waterman read searching.</p>

    <h2>Endpoints</h2>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/align/local</code>
        <p>Align a query against a read (Smith-Waterman, linear gap).</p>
        <pre>{"query": "GGTTGACTA", "read": "TGTTACGG", "gap_penalty": 2}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/align/search</code>
        <p>Align both query orientations against a read.</p>
        <pre>{"query": "AAACCCGGG", "read": "CCCGGGTTT"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/align/score</code>
        <p>Compute the best local alignment score only.</p>
        <pre>{"query": "ACGT", "read": "ACGT"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/sequence/reverse-complement</code>
        <p>Reverse complement a DNA sequence.</p>
        <pre>{"sequence": "AAACCC"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/quality/stats</code>
        <p>Summarize Phred+33 encoded base qualities.</p>
        <pre>{"quality": "IIIIHHHH"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/matrix/score</code>
        <p>Look up the EDNAFULL score for a symbol pair.</p>
        <pre>{"a": "A", "b": "T"}</pre>
    </div>

    <p>For more information, see the <a href="https://github.com/gqss-bio/gqss-go">documentation</a>.</p>
</body>
</html>`))
	})

	addr := fmt.Sprintf("%s:%d", *host, *port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Could not gracefully shutdown: %v\n", err)
		}
		close(done)
	}()

	log.Printf("GQSS API server starting on http://%s\n", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", addr, err)
	}

	<-done
	log.Println("Server stopped")
}
