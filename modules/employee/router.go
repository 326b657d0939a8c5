package employee

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures which services the employee module mounts.
// Each service is optional.
type RouterOptions struct {
	// Form serves the add-employee page, submission and per-field validation.
	Form Mountable
	// Search serves the search page and its results.
	Search Mountable
}

// Router creates the employee module router.
//
//	formSvc := employee.NewFormService(engine, directory, formViews, errorHandler)
//	searchSvc := employee.NewSearchService(directory, searchViews, errorHandler)
//
//	r := chi.NewRouter()
//	r.Mount("/", employee.Router(employee.RouterOptions{
//		Form:   formSvc,
//		Search: searchSvc,
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	if opts.Search != nil {
		r.Mount("/search", opts.Search.Handle())
	}
	if opts.Form != nil {
		r.Mount("/", opts.Form.Handle())
	}

	return r
}
