// Package views renders the employee module pages and DataStar fragments.
//
// Templates live in templates/ and are embedded into the binary. Every
// view is exposed as a templ.Component so it plugs into the handler
// package's Templ responses:
//
//	v := views.New(views.WithTitle(cfg.AppName))
//	formSvc := employee.NewFormService(engine, directory, v.Form(), errorHandler)
package views

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/drdl/portal/handler"
	employee "github.com/drdl/portal/modules/employee"
)

// DefaultDataStarScript is the DataStar client bundle matching datastar-go v1.
const DefaultDataStarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

// DefaultTitle is the page title when none is configured.
const DefaultTitle = "Employee Management Portal"

//go:embed templates/*.html
var files embed.FS

var funcs = template.FuncMap{
	"json": func(v any) (string, error) {
		b, err := json.MarshalIndent(v, "", "  ")
		return string(b), err
	},
}

var (
	partials = template.Must(template.New("views").Funcs(funcs).ParseFS(files,
		"templates/layout.html",
		"templates/partials.html",
	))

	formPage   = page("templates/form_page.html")
	searchPage = page("templates/search_page.html")
	errorPage  = page("templates/error_page.html")
)

func page(file string) *template.Template {
	return template.Must(template.Must(partials.Clone()).ParseFS(files, file))
}

// Views holds rendering settings shared by every page.
type Views struct {
	title  string
	script string
}

type Option func(*Views)

// WithTitle sets the page title and heading.
func WithTitle(title string) Option {
	return func(v *Views) {
		if title != "" {
			v.title = title
		}
	}
}

// WithDataStarScript sets the URL of the DataStar client bundle.
func WithDataStarScript(src string) Option {
	return func(v *Views) {
		if src != "" {
			v.script = src
		}
	}
}

func New(opts ...Option) *Views {
	v := &Views{title: DefaultTitle, script: DefaultDataStarScript}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Form returns the views of the add-employee page.
func (v *Views) Form() *employee.FormServiceViews {
	return &employee.FormServiceViews{
		Page: func(p employee.FormPageParams) templ.Component {
			return v.layout(formPage, p.Toast, nav(p.SearchURL, "Search Employees"), formPageView{
				Form:    newFormView(p.Form),
				Preview: p.Preview,
			})
		},
		Form: func(p employee.FormParams) templ.Component {
			return render(partials, "form", newFormView(p))
		},
		FieldError: func(p employee.FieldErrorParams) templ.Component {
			return render(partials, "field-error", fieldView{Name: p.Field, Error: p.Message})
		},
		Toast: func(p employee.ToastParams) templ.Component {
			return render(partials, "toast", p)
		},
		Preview: func(p employee.PreviewParams) templ.Component {
			return render(partials, "preview", &p)
		},
	}
}

// Search returns the views of the search page.
func (v *Views) Search() *employee.SearchServiceViews {
	return &employee.SearchServiceViews{
		Page: func(p employee.SearchPageParams) templ.Component {
			return v.layout(searchPage, p.Toast, nav(p.FormURL, "Add Employee"), p)
		},
		Results: func(p employee.SearchResultsParams) templ.Component {
			return render(partials, "results", p)
		},
		Toast: func(p employee.ToastParams) templ.Component {
			return render(partials, "toast", p)
		},
	}
}

// ErrorHandlerConfig returns the error page and toast for
// handler.NewErrorHandler.
func (v *Views) ErrorHandlerConfig() handler.ErrorHandlerConfig {
	return handler.ErrorHandlerConfig{
		ErrorPage: func(p handler.ErrorPageParams) templ.Component {
			return v.layout(errorPage, nil, nav("/", "Back to the portal"), p)
		},
		ErrorToast: func(p handler.ErrorToastParams) templ.Component {
			return render(partials, "toast", employee.ToastParams{
				Kind:    employee.ToastError,
				Message: p.Message,
			})
		},
		ToastTarget: employee.ToastTarget,
		ToastMode:   handler.PatchAppend,
	}
}

type link struct {
	URL   string
	Label string
}

func nav(url, label string) []link {
	return []link{{URL: url, Label: label}}
}

type layoutView struct {
	Title   string
	Script  string
	Links   []link
	Toast   *employee.ToastParams
	Content any
}

func (v *Views) layout(t *template.Template, toast *employee.ToastParams, links []link, content any) templ.Component {
	return render(t, "layout", layoutView{
		Title:   v.title,
		Script:  v.script,
		Links:   links,
		Toast:   toast,
		Content: content,
	})
}

func render(t *template.Template, name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return t.ExecuteTemplate(w, name, data)
	})
}
