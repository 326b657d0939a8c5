package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/drdl/portal/pkg/logger"
	"github.com/drdl/portal/pkg/requestid"
	"github.com/drdl/portal/pkg/validator"
)

// ErrorPageParams contains data for rendering error pages.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams contains data for rendering error toasts.
type ErrorToastParams struct {
	Message   string
	Type      string // "error", "warning", "info"
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders the full error page for plain requests.
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders a toast for DataStar requests.
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget defaults to "#toast-container".
	ToastTarget string

	// ToastMode defaults to PatchAppend.
	ToastMode datastar.ElementPatchMode
}

type errorInfo struct {
	statusCode int
	message    string
	kind       string
	level      slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

func setConfigDefaults(cfg ErrorHandlerConfig) ErrorHandlerConfig {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchAppend
	}
	return cfg
}

func formatValidationErrors(errs validator.ValidationErrors) string {
	if errs.IsEmpty() {
		return "Validation failed"
	}
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Field+": "+e.Message)
	}
	return strings.Join(messages, "; ")
}

// classifyError maps err to a status, a user-facing message and a log level.
// Internal error text is never shown to the user.
func classifyError(err error) errorInfo {
	info := errorInfo{
		statusCode: http.StatusInternalServerError,
		message:    "An error occurred processing your request",
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.statusCode = httpErr.Code
		info.message = httpErr.Key
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		info.statusCode = http.StatusBadRequest
		info.message = formatValidationErrors(validationErrs)
	}

	switch {
	case isClientError(info.statusCode):
		info.kind = "warning"
		info.level = slog.LevelWarn
	case info.statusCode >= http.StatusInternalServerError:
		info.kind = "error"
		info.level = slog.LevelError
	default:
		info.kind = "info"
		info.level = slog.LevelError
	}
	return info
}

func renderToast(ctx Context, cfg ErrorHandlerConfig, info errorInfo, requestID string, log *slog.Logger) {
	if cfg.ErrorToast == nil {
		log.WarnContext(ctx, "no error toast component configured")
		return
	}

	response := Templ(
		cfg.ErrorToast(ErrorToastParams{
			Message:   info.message,
			Type:      info.kind,
			RequestID: requestID,
		}),
		WithTarget(cfg.ToastTarget),
		WithPatchMode(cfg.ToastMode),
	)

	// SSE responses always answer 200.
	if err := response.Render(ctx.ResponseWriter(), ctx.Request()); err != nil {
		log.ErrorContext(ctx, "failed to render error toast", logger.Error(err))
	}
}

func renderPage(ctx Context, cfg ErrorHandlerConfig, info errorInfo, requestID string, log *slog.Logger) {
	w := ctx.ResponseWriter()
	if cfg.ErrorPage == nil {
		http.Error(w, info.message, info.statusCode)
		return
	}

	component := cfg.ErrorPage(ErrorPageParams{
		Error:      info.message,
		StatusCode: info.statusCode,
		RequestID:  requestID,
		RetryURL:   ctx.Request().URL.Path,
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(info.statusCode)
	if err := component.Render(ctx, w); err != nil {
		log.ErrorContext(ctx, "failed to render error page", logger.Error(err))
	}
}

// NewErrorHandler returns the error handler shared by every route. Plain
// requests get an error page with the mapped status; DataStar requests get
// a toast. Client errors are logged at Warn and everything else at Error.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	cfg = setConfigDefaults(cfg)
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx Context, err error) {
		r := ctx.Request()
		requestID := requestid.FromContext(r.Context())
		info := classifyError(err)

		log.LogAttrs(r.Context(), info.level, "request error",
			logger.Error(err),
			logger.StatusCode(info.statusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("datastar", IsDataStar(r)),
		)

		if IsDataStar(r) {
			renderToast(ctx, cfg, info, requestID, log)
			return
		}
		renderPage(ctx, cfg, info, requestID, log)
	}
}
