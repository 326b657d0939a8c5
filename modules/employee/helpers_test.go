package employee_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/a-h/templ"

	employee "github.com/drdl/portal/modules/employee"
	emp "github.com/drdl/portal/svc/employee"
)

func text(format string, args ...any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	})
}

func toastMessage(p *employee.ToastParams) string {
	if p == nil {
		return ""
	}
	return p.Message
}

func formViews() *employee.FormServiceViews {
	return &employee.FormServiceViews{
		Page: func(p employee.FormPageParams) templ.Component {
			return text("page action=%s errors=%v toast=%q preview=%t search=%s",
				p.Form.Action, p.Form.Errors.Fields(), toastMessage(p.Toast), p.Preview != nil, p.SearchURL)
		},
		Form: func(p employee.FormParams) templ.Component {
			return text(`<form id="employee-form" data-errors="%s"></form>`, strings.Join(p.Errors.Fields(), ","))
		},
		FieldError: func(p employee.FieldErrorParams) templ.Component {
			return text(`<span id="%s-error">%s</span>`, p.Field, p.Message)
		},
		Toast: func(p employee.ToastParams) templ.Component {
			return text(`<div class="toast toast-%s">%s</div>`, p.Kind, p.Message)
		},
		Preview: func(p employee.PreviewParams) templ.Component {
			return text(`<section id="employee-preview">%s</section>`, p.Saved.EmpID)
		},
	}
}

func searchViews() *employee.SearchServiceViews {
	return &employee.SearchServiceViews{
		Page: func(p employee.SearchPageParams) templ.Component {
			return text("search page query=%q results=%d failed=%t toast=%q",
				p.Results.Query, len(p.Results.Employees), p.Results.Failed, toastMessage(p.Toast))
		},
		Results: func(p employee.SearchResultsParams) templ.Component {
			names := make([]string, 0, len(p.Employees))
			for _, e := range p.Employees {
				names = append(names, e.EmpName)
			}
			return text(`<div id="search-results">%s</div>`, strings.Join(names, ";"))
		},
		Toast: func(p employee.ToastParams) templ.Component {
			return text(`<div class="toast toast-%s">%s</div>`, p.Kind, p.Message)
		},
	}
}

type fakeSaver struct {
	mu    sync.Mutex
	err   error
	saved []emp.Payload
}

func (f *fakeSaver) Create(_ context.Context, p emp.Payload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, p)
	return f.err
}

type fakeSearcher struct {
	found []emp.Employee
	err   error
	names []string
}

func (f *fakeSearcher) Search(_ context.Context, name string) ([]emp.Employee, error) {
	f.names = append(f.names, name)
	return f.found, f.err
}

func validForm() url.Values {
	return url.Values{
		"empId":       {"123456"},
		"empName":     {"John Smith"},
		"phone":       {"9876543210"},
		"address":     {"12 MG Road, Bengaluru"},
		"age":         {"30"},
		"gender":      {"Male"},
		"roleName":    {"Team Lead"},
		"roleNumber":  {"42"},
		"fromDate":    {"2024-01-01"},
		"toDate":      {""},
		"naFlag":      {"N"},
		"directorate": {"DIT"},
		"division":    {"SDD"},
		"email":       {""},
	}
}

func postForm(target string, values url.Values, dataStar bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if dataStar {
		markDataStar(req)
	}
	return req
}

func markDataStar(req *http.Request) {
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Datastar-Request", "true")
}
