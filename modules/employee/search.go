package employee

import (
	"context"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/drdl/portal/handler"
	"github.com/drdl/portal/pkg/binder"
	"github.com/drdl/portal/pkg/logger"
	emp "github.com/drdl/portal/svc/employee"
)

// Searcher finds employees by name.
type Searcher interface {
	Search(ctx context.Context, name string) ([]emp.Employee, error)
}

type SearchService struct {
	searcher     Searcher
	views        *SearchServiceViews
	errorHandler handler.ErrorHandler[handler.Context]
	settings     settings
}

type SearchServiceViews struct {
	Page func(SearchPageParams) templ.Component
	// Results must render an element with id "search-results".
	Results func(SearchResultsParams) templ.Component
	Toast   func(ToastParams) templ.Component
}

func NewSearchService(
	searcher Searcher,
	views *SearchServiceViews,
	errorHandler handler.ErrorHandler[handler.Context],
	opts ...Option,
) *SearchService {
	s := newSettings(opts)
	s.logger = s.logger.With(logger.Component("employee_search"))

	return &SearchService{
		searcher:     searcher,
		views:        views,
		errorHandler: errorHandler,
		settings:     s,
	}
}

func (s *SearchService) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.search,
		handler.WithBinders[handler.Context, SearchRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, SearchRequest](s.errorHandler),
	))

	return r
}

// SearchRequest is bound from the query string of both the initial page
// load and DataStar searches.
type SearchRequest struct {
	Name string `query:"name"`
}

// SearchResultsParams contains data for rendering the result cards.
type SearchResultsParams struct {
	Query     string
	Employees []emp.Employee
	// Searched is false until a non-empty name was looked up.
	Searched bool
	Failed   bool
}

// SearchPageParams contains data for rendering the search page.
type SearchPageParams struct {
	Results SearchResultsParams
	Toast   *ToastParams
	// Action is the search URL.
	Action string
	// FormURL links back to the add-employee page.
	FormURL string
}

func (s *SearchService) search(ctx handler.Context, req SearchRequest) handler.Response {
	results := SearchResultsParams{Query: strings.TrimSpace(req.Name)}
	page := s.pageParams(results)

	if results.Query == "" {
		return handler.TemplPartial(s.views.Results(results), s.views.Page(page))
	}

	found, err := s.searcher.Search(ctx, results.Query)
	results.Searched = true
	if err != nil {
		s.settings.logger.DebugContext(ctx, "search failed", logger.Error(err))

		results.Failed = true
		toast := ToastParams{Kind: ToastError, Message: MsgSearchFailed}
		page = s.pageParams(results)
		page.Toast = &toast
		return handler.TemplMultiPartial(
			s.views.Page(page),
			handler.Patch(s.views.Results(results)),
			toastPatch(s.views.Toast(toast)),
		)
	}

	results.Employees = found
	return handler.TemplPartial(s.views.Results(results), s.views.Page(s.pageParams(results)))
}

func (s *SearchService) pageParams(results SearchResultsParams) SearchPageParams {
	return SearchPageParams{
		Results: results,
		Action:  s.settings.path("/search"),
		FormURL: s.settings.path("/"),
	}
}
