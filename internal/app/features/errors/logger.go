// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger pairs structured logging with user-facing error pages so
// handlers can report a failure in one call.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger writing to the given logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs the failure with its cause and renders the server
// error page with the given user-facing message.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, what string, err error, userMsg, backURL string) {
	e.log.Error(what,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)
	RenderServerError(w, r, userMsg, backURL)
}

// LogBadRequest logs a malformed request and renders the bad request page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, what string, err error, userMsg, backURL string) {
	e.log.Warn(what,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)
	RenderBadRequest(w, r, userMsg, backURL)
}
