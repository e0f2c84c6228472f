package httpserver

import (
	"net/http"
	"time"
)

// New builds the admin/metrics HTTP server. The run trigger blocks until a
// full notification pass completes, so the write timeout has to cover a pass
// over the whole user base, not just a quick JSON response.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       2 * time.Minute,
	}
}
