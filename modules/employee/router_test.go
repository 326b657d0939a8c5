package employee_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	employee "github.com/drdl/portal/modules/employee"
	emp "github.com/drdl/portal/svc/employee"
)

func TestRouter(t *testing.T) {
	t.Parallel()

	r := employee.Router(employee.RouterOptions{
		Form:   employee.NewFormService(emp.NewEngine(nil), &fakeSaver{}, formViews(), nil),
		Search: employee.NewSearchService(&fakeSearcher{}, searchViews(), nil),
	})

	tests := []struct {
		method string
		target string
		status int
		prefix string
	}{
		{method: http.MethodGet, target: "/", status: http.StatusOK, prefix: "page "},
		{method: http.MethodGet, target: "/search", status: http.StatusOK, prefix: "search page "},
		{method: http.MethodPost, target: "/validate/empId", status: http.StatusOK, prefix: `<span id="empId-error">`},
		{method: http.MethodGet, target: "/missing", status: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			var req *http.Request
			if tt.method == http.MethodPost {
				req = postForm(tt.target, validForm(), false)
			} else {
				req = httptest.NewRequest(tt.method, tt.target, nil)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.prefix != "" {
				assert.Contains(t, w.Body.String(), tt.prefix)
			}
		})
	}
}

func TestRouterWithoutServices(t *testing.T) {
	t.Parallel()

	r := employee.Router(employee.RouterOptions{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/search", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
