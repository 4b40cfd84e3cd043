package web

import (
	"bytes"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"greenscape/internal/assets"
)

// ErrorKind classifies request failures for status mapping and page copy.
type ErrorKind int

const (
	// KindNotFound indicates the requested path does not exist
	KindNotFound ErrorKind = iota
	// KindMethodNotAllowed indicates the path exists but not for this method
	KindMethodNotAllowed
	// KindBadRequest indicates the client sent something unusable
	KindBadRequest
	// KindInternal indicates an unexpected server-side failure
	KindInternal
	// KindRender indicates a template failed to render
	KindRender
)

// AppError is a request-level failure rendered as an HTML error page.
type AppError struct {
	Kind   ErrorKind
	Detail string
	cause  error
}

// NotFoundError reports a missing page.
func NotFoundError() *AppError {
	return &AppError{Kind: KindNotFound}
}

// MethodNotAllowedError reports a known path hit with the wrong method.
func MethodNotAllowedError() *AppError {
	return &AppError{Kind: KindMethodNotAllowed}
}

// BadRequestError reports an unusable request; detail is shown to the user.
func BadRequestError(detail string) *AppError {
	return &AppError{Kind: KindBadRequest, Detail: detail}
}

// InternalError reports an unexpected server-side failure.
func InternalError(cause error) *AppError {
	return &AppError{Kind: KindInternal, cause: cause}
}

// RenderError reports a template rendering failure.
func RenderError(cause error) *AppError {
	return &AppError{Kind: KindRender, cause: cause}
}

// Error implements the error interface.
func (e *AppError) Error() string {
	switch e.Kind {
	case KindNotFound:
		return "the requested resource was not found"
	case KindMethodNotAllowed:
		return "method not allowed"
	case KindBadRequest:
		return fmt.Sprintf("bad request: %s", e.Detail)
	case KindRender:
		return fmt.Sprintf("template rendering error: %v", e.cause)
	default:
		return fmt.Sprintf("internal server error: %v", e.cause)
	}
}

// Unwrap returns the underlying error, if any.
func (e *AppError) Unwrap() error {
	return e.cause
}

// Status maps the error kind to its HTTP status code.
func (e *AppError) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Title is the error page heading.
func (e *AppError) Title() string {
	switch e.Kind {
	case KindNotFound:
		return "Page Not Found"
	case KindMethodNotAllowed:
		return "Method Not Allowed"
	case KindBadRequest:
		return "Bad Request"
	case KindRender:
		return "Rendering Error"
	default:
		return "Internal Server Error"
	}
}

// Message is the user-facing explanation shown on the error page.
func (e *AppError) Message() string {
	switch e.Kind {
	case KindNotFound:
		return "The page you're looking for doesn't exist or has been moved."
	case KindMethodNotAllowed:
		return "That method is not supported for this page."
	case KindBadRequest:
		return e.Detail
	case KindRender:
		return "Failed to render the page. Please try again."
	default:
		return "An unexpected error occurred. Please try again later."
	}
}

// errorFallback is the inline document used when the error template
// itself fails to render.
const errorFallback = `<!DOCTYPE html>
<html lang="en">
<head><title>Error %d</title></head>
<body>
<h1>Error %d</h1>
<p>%s</p>
<a href="/">Return to Home</a>
</body>
</html>
`

// renderErrorPage writes the HTML error page for the given failure. The
// page is rendered into a buffer first so a template failure can fall
// back to a minimal inline document instead of emitting a torn page.
func renderErrorPage(w http.ResponseWriter, logger *zap.Logger, appErr *AppError) {
	var buf bytes.Buffer
	data := assets.ErrorData{
		Status:  appErr.Status(),
		Title:   appErr.Title(),
		Message: appErr.Message(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := assets.RenderError(&buf, data); err != nil {
		logger.Error("error page render failed", zap.Error(err))
		w.WriteHeader(appErr.Status())
		fmt.Fprintf(w, errorFallback, appErr.Status(), appErr.Status(), appErr.Message())
		return
	}

	w.WriteHeader(appErr.Status())
	_, _ = buf.WriteTo(w)
}
