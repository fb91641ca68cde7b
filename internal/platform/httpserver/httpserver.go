package httpserver

import (
	"net/http"

	"bulwark/internal/platform/config"
)

// New builds an HTTP server with the configured timeouts.
func New(cfg config.Server, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
