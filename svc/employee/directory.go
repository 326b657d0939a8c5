package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/drdl/portal/pkg/apiclient"
	"github.com/drdl/portal/pkg/cache"
	"github.com/drdl/portal/pkg/logger"
	"github.com/drdl/portal/pkg/requestid"
)

const (
	createPath = "/api/employees"
	searchPath = "/api/employees/search"
)

// Directory is the client side of the employee API: it creates records
// and searches them by name. Search results are cached briefly; a
// successful create drops the cache.
type Directory struct {
	cfg     ClientConfig
	client  *apiclient.Client
	breaker *apiclient.Breaker
	results *cache.LRUCache[string, []Employee]
	logger  *slog.Logger
}

// DirectoryOption configures a Directory.
type DirectoryOption func(*Directory)

func WithLogger(l *slog.Logger) DirectoryOption {
	return func(d *Directory) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithHTTPClient sends requests through c instead of the pooled default client.
func WithHTTPClient(c *http.Client) DirectoryOption {
	return func(d *Directory) {
		if c != nil {
			d.client = apiclient.NewWithHTTPClient(c)
		}
	}
}

// NewDirectory creates a Directory for the API at cfg.BaseURL.
func NewDirectory(cfg ClientConfig, opts ...DirectoryOption) *Directory {
	d := &Directory{
		cfg:     cfg,
		client:  apiclient.New(),
		breaker: apiclient.NewBreaker(cfg.BreakerThreshold, 1, cfg.BreakerCooldown),
		logger:  slog.New(slog.DiscardHandler),
	}
	if cfg.SearchCacheSize > 0 {
		d.results = cache.NewLRUCache[string, []Employee](cfg.SearchCacheSize, cache.WithTTL(cfg.SearchCacheTTL))
	}

	for _, opt := range opts {
		opt(d)
	}

	d.logger = d.logger.With(logger.Component("employee_directory"))
	return d
}

// Create sends p to the API. It fails with ErrSaveRejected when the API
// answers with a non-2xx status or refuses the payload, and with ErrNetwork
// when no answer arrives.
func (d *Directory) Create(ctx context.Context, p Payload) error {
	res, err := d.client.PostJSON(ctx, d.endpoint(createPath), p, d.requestOptions(ctx, apiclient.WithNoRetry())...)
	if err != nil {
		switch {
		case errors.Is(err, apiclient.ErrUnexpectedStatus), errors.Is(err, apiclient.ErrInvalidPayload):
			d.logger.WarnContext(ctx, "employee not saved",
				logger.Event("employee.create"),
				logger.StatusCode(apiclient.StatusCode(err)),
				logger.Error(err),
			)
			return fmt.Errorf("%w: %w", ErrSaveRejected, err)
		default:
			d.logger.ErrorContext(ctx, "employee api unreachable",
				logger.Event("employee.create"),
				logger.Error(err),
			)
			return fmt.Errorf("%w: %w", ErrNetwork, err)
		}
	}

	if d.results != nil {
		d.results.Clear()
	}

	d.logger.InfoContext(ctx, "employee created",
		logger.Event("employee.create"),
		logger.Field(FieldEmpID, p.EmpID),
		logger.StatusCode(res.StatusCode),
		logger.Duration(res.Duration),
	)
	return nil
}

// Search returns the employees whose name matches name. A blank name
// returns no results without calling the API.
func (d *Directory) Search(ctx context.Context, name string) ([]Employee, error) {
	query := strings.TrimSpace(name)
	if query == "" {
		return nil, nil
	}

	if d.results != nil {
		if hit, ok := d.results.Get(query); ok {
			return slices.Clone(hit), nil
		}
	}

	var found []Employee
	target := d.endpoint(searchPath) + "?name=" + url.QueryEscape(query)
	res, err := d.client.GetJSON(ctx, target, &found, d.requestOptions(ctx, apiclient.WithMaxRetries(d.cfg.SearchRetries))...)
	if err != nil {
		d.logger.WarnContext(ctx, "employee search failed",
			logger.Event("employee.search"),
			logger.StatusCode(apiclient.StatusCode(err)),
			logger.RetryCount(max(res.Attempts-1, 0)),
			logger.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}

	if found == nil {
		found = []Employee{}
	}
	if d.results != nil {
		d.results.Put(query, slices.Clone(found))
	}

	d.logger.DebugContext(ctx, "employee search",
		logger.Event("employee.search"),
		slog.Int("results", len(found)),
		logger.Duration(res.Duration),
	)
	return found, nil
}

// Ready reports whether the directory will attempt API calls. It fails
// while the circuit breaker is open.
func (d *Directory) Ready(context.Context) error {
	if d.breaker.State() == apiclient.BreakerOpen {
		return apiclient.ErrCircuitOpen
	}
	return nil
}

func (d *Directory) endpoint(path string) string {
	return strings.TrimRight(d.cfg.BaseURL, "/") + path
}

func (d *Directory) requestOptions(ctx context.Context, extra ...apiclient.RequestOption) []apiclient.RequestOption {
	opts := []apiclient.RequestOption{
		apiclient.WithTimeout(d.cfg.Timeout),
		apiclient.WithHeader(requestid.Header, requestid.FromContext(ctx)),
		apiclient.WithBreaker(d.breaker),
		apiclient.WithSignature(d.cfg.SigningSecret),
		apiclient.WithOnAttempt(func(a apiclient.Attempt) {
			if a.Err == nil {
				return
			}
			d.logger.DebugContext(ctx, "employee api attempt failed",
				slog.String("method", a.Method),
				slog.Int("attempt", a.Number),
				logger.StatusCode(a.StatusCode),
				logger.Duration(a.Duration),
				logger.Error(a.Err),
			)
		}),
	}
	return append(opts, extra...)
}
