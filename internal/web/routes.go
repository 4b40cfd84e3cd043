package web

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"

	"greenscape/internal/assets"
)

// registerRoutes wires all site routes.
func (s *Server) registerRoutes() {
	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	s.router.HandleFunc("/contact", s.handleContactPage).Methods(http.MethodGet)
	s.router.HandleFunc("/contact", s.handleContactSubmit).Methods(http.MethodPost)
	s.router.HandleFunc("/contact/form", s.handleContactForm).Methods(http.MethodGet)
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	// Static assets are embedded and gzip-compressed. SSE responses stay
	// uncompressed, so only this subtree goes through gzhttp.
	static := http.StripPrefix("/static/", http.FileServer(http.FS(assets.StaticFS)))
	s.router.PathPrefix("/static/").Handler(gzhttp.GzipHandler(static)).Methods(http.MethodGet)

	s.router.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
	s.router.MethodNotAllowedHandler = http.HandlerFunc(s.handleMethodNotAllowed)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	renderErrorPage(w, s.logger, NotFoundError())
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	renderErrorPage(w, s.logger, MethodNotAllowedError())
}
