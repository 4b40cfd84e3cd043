package web

import (
	"bytes"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
	"go.uber.org/zap"

	"greenscape/internal/assets"
	"greenscape/internal/contact"
)

// handleContactSubmit validates a form-encoded submission and answers
// with a Datastar signal patch: success resets the form, a validation
// failure surfaces its message with the field signals left untouched.
func (s *Server) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.logger.Warn("contact form body unreadable",
			zap.Error(err),
			zap.String("requestId", GetRequestID(r.Context())),
		)
		s.streamSignals(w, r, contact.ErrorPatch(contact.GenericErrorMessage))
		return
	}

	sub := contact.FromForm(r.PostForm)
	s.logger.Info("contact submission received",
		zap.String("name", sub.Name),
		zap.String("email", sub.Email),
		zap.String("phone", sub.Phone),
		zap.String("service", sub.Service),
		zap.String("message", sub.Message),
	)

	if err := contact.Validate(sub); err != nil {
		s.streamSignals(w, r, contact.ErrorPatch(err.Error()))
		return
	}

	s.logger.Info("contact submission validated",
		zap.String("name", sub.Name),
		zap.String("email", sub.Email),
	)
	s.streamSignals(w, r, contact.SuccessPatch())
}

// handleContactForm streams the form fragment as an element patch, for
// clients that load the form over SSE.
func (s *Server) handleContactForm(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := assets.RenderContactForm(&buf, s.pageData("Contact")); err != nil {
		s.logger.Error("contact form render failed", zap.Error(err))
		renderErrorPage(w, s.logger, RenderError(err))
		return
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElements(buf.String()); err != nil {
		s.logger.Error("stream element patch failed", zap.Error(err))
	}
}

// streamSignals sends one datastar-patch-signals event and finishes the
// response.
func (s *Server) streamSignals(w http.ResponseWriter, r *http.Request, patch contact.Patch) {
	data, err := patch.JSON()
	if err != nil {
		s.logger.Error("marshal signal patch failed", zap.Error(err))
		renderErrorPage(w, s.logger, InternalError(err))
		return
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchSignals(data); err != nil {
		s.logger.Error("stream signal patch failed", zap.Error(err))
	}
}
