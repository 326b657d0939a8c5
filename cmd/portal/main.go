// Command portal serves the employee management UI: the add-employee form
// with live validation and the employee search, both backed by the
// employee API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/drdl/portal/handler"
	employee "github.com/drdl/portal/modules/employee"
	"github.com/drdl/portal/modules/employee/views"
	"github.com/drdl/portal/pkg/clientip"
	"github.com/drdl/portal/pkg/config"
	"github.com/drdl/portal/pkg/environment"
	"github.com/drdl/portal/pkg/httpserver"
	"github.com/drdl/portal/pkg/logger"
	"github.com/drdl/portal/pkg/ratelimiter"
	"github.com/drdl/portal/pkg/requestid"
	emp "github.com/drdl/portal/svc/employee"
)

const serviceName = "portal"

type Config struct {
	AppName        string `env:"APP_NAME" envDefault:"Employee Management Portal"`
	AppEnv         string `env:"APP_ENV" envDefault:"development"`
	LogLevel       string `env:"LOG_LEVEL"`
	DataStarScript string `env:"DATASTAR_SCRIPT_URL"`

	Server   httpserver.Config
	Employee emp.ClientConfig
	// Submit throttles form submissions per client IP; SUBMIT_RATE_CAPACITY=0
	// turns it off.
	Submit ratelimiter.Config `envPrefix:"SUBMIT_RATE_"`
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.Employee.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("EMPLOYEE_API_URL %q is not an absolute http(s) URL", c.Employee.BaseURL)
	}
	if c.Submit.Enabled() && (c.Submit.RefillRate <= 0 || c.Submit.RefillInterval <= 0) {
		return fmt.Errorf("SUBMIT_RATE_REFILL_RATE and SUBMIT_RATE_REFILL_INTERVAL must be positive")
	}
	if c.LogLevel != "" {
		if _, err := logger.ParseLevel(c.LogLevel); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	log := newLogger(cfg)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("portal stopped", logger.Error(err))
		os.Exit(1)
	}
}

func newLogger(cfg Config) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.AppEnv, serviceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if level, err := logger.ParseLevel(cfg.LogLevel); cfg.LogLevel != "" && err == nil {
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...)
}

// run blocks until the server stops; SIGINT and SIGTERM are handled by
// the server.
func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	directory := emp.NewDirectory(cfg.Employee, emp.WithLogger(log))

	var limiter ratelimiter.RateLimiter
	if cfg.Submit.Enabled() {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()

		bucket, err := ratelimiter.NewBucket(store, cfg.Submit)
		if err != nil {
			return err
		}
		limiter = bucket
	}

	srv := httpserver.NewFromConfig(cfg.Server,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("employee api", slog.String("url", cfg.Employee.BaseURL))
		}),
	)
	return srv.Run(ctx, newRouter(cfg, log, directory, limiter))
}

// newRouter wires the portal. A nil limiter disables submission throttling.
func newRouter(cfg Config, log *slog.Logger, directory *emp.Directory, limiter ratelimiter.RateLimiter) http.Handler {
	v := views.New(
		views.WithTitle(cfg.AppName),
		views.WithDataStarScript(cfg.DataStarScript),
	)
	errorHandler := handler.NewErrorHandler(log, v.ErrorHandlerConfig())

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(environment.Parse(cfg.AppEnv)),
		middleware.Recoverer,
	)

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, directory.Ready))

	// Set before Mount so the module routers inherit them.
	r.NotFound(handler.Wrap(fail(handler.ErrNotFound),
		handler.WithErrorHandler[handler.Context, struct{}](errorHandler)))
	r.MethodNotAllowed(handler.Wrap(fail(handler.ErrMethodNotAllowed),
		handler.WithErrorHandler[handler.Context, struct{}](errorHandler)))

	formOpts := []employee.Option{employee.WithLogger(log)}
	if limiter != nil {
		formOpts = append(formOpts, employee.WithSubmitLimiter(limiter))
	}

	r.Mount("/", employee.Router(employee.RouterOptions{
		Form:   employee.NewFormService(emp.NewEngine(nil), directory, v.Form(), errorHandler, formOpts...),
		Search: employee.NewSearchService(directory, v.Search(), errorHandler, employee.WithLogger(log)),
	}))

	return r
}

func fail(err error) handler.HandlerFunc[handler.Context, struct{}] {
	return func(handler.Context, struct{}) handler.Response {
		return handler.Error(err)
	}
}
