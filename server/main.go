//go:build !js
// +build !js

package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/simukka/galaxy-invaders/common"
)

//go:embed index.html
var indexHTML []byte

// newHandler serves the embedded page at the root and everything else
// (compiled bundle, assets/) from staticDir.
func newHandler(staticDir string) http.Handler {
	mux := http.NewServeMux()
	files := http.FileServer(http.Dir(staticDir))

	// Serve embedded index.html at root path
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" || r.URL.Path == "/index.html" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(indexHTML)
			return
		}
		// Serve other static files from disk
		files.ServeHTTP(w, r)
	})

	// Health check
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})

	return mux
}

func main() {
	defaultPort, err := strconv.Atoi(common.GetEnv("INVADERS_PORT", "8080"))
	if err != nil {
		log.Fatalf("INVADERS_PORT: %v", err)
	}
	port := flag.Int("port", defaultPort, "HTTP server port")
	staticDir := flag.String("static", common.GetEnv("INVADERS_STATIC", "."), "Directory to serve static files from")
	flag.Parse()

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Galaxy Invaders server starting on http://localhost%s", addr)
	log.Printf("Serving static files from: %s", *staticDir)

	srv := &http.Server{
		Addr:              addr,
		Handler:           newHandler(*staticDir),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
