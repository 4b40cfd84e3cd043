package web

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"greenscape/internal/assets"
	"greenscape/internal/contact"
)

func (s *Server) pageData(title string) assets.PageData {
	return assets.PageData{
		Title:    title,
		SiteName: siteName,
		Services: contact.Services,
	}
}

// writePage renders into a buffer first so a template failure becomes a
// clean error page instead of a torn response.
func (s *Server) writePage(w http.ResponseWriter, name string, render func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		s.logger.Error("page render failed", zap.String("page", name), zap.Error(err))
		renderErrorPage(w, s.logger, RenderError(err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, "index", func(buf *bytes.Buffer) error {
		return assets.RenderIndex(buf, s.pageData("Home"))
	})
}

func (s *Server) handleContactPage(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, "contact", func(buf *bytes.Buffer) error {
		return assets.RenderContact(buf, s.pageData("Contact"))
	})
}
