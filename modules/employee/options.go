package employee

import (
	"log/slog"
	"strings"

	"github.com/drdl/portal/handler"
	"github.com/drdl/portal/pkg/ratelimiter"
)

// Messages shown to the user after a submission or search.
const (
	MsgSubmitted    = "Employee data submitted successfully!"
	MsgSaveFailed   = "Failed to save employee."
	MsgNetworkError = "Network error"
	MsgSearchFailed = "No results or error occurred."
	MsgThrottled    = "Too many submissions. Please wait a moment."
)

// ToastKind selects the toast style.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// ToastParams contains data for rendering a toast notification.
type ToastParams struct {
	Kind    ToastKind
	Message string
}

// ToastTarget is the container toasts are appended to.
const ToastTarget = "#toast-container"

type settings struct {
	logger   *slog.Logger
	basePath string
	limiter  ratelimiter.RateLimiter
}

// Option configures FormService and SearchService.
type Option func(*settings)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBasePath sets the path the module router is mounted on. Rendered
// links and form actions are prefixed with it.
func WithBasePath(p string) Option {
	return func(s *settings) {
		s.basePath = strings.TrimSuffix(p, "/")
	}
}

// WithSubmitLimiter throttles form submissions per client IP. Field
// validation is not limited.
func WithSubmitLimiter(l ratelimiter.RateLimiter) Option {
	return func(s *settings) {
		s.limiter = l
	}
}

func newSettings(opts []Option) settings {
	s := settings{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s settings) path(p string) string {
	return s.basePath + p
}

func toastPatch(c handler.TemplComponent) handler.TemplPatch {
	return handler.Patch(c,
		handler.WithTarget(ToastTarget),
		handler.WithPatchMode(handler.PatchAppend),
	)
}
