package views_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drdl/portal/handler"
	employee "github.com/drdl/portal/modules/employee"
	"github.com/drdl/portal/modules/employee/views"
	"github.com/drdl/portal/pkg/validator"
	emp "github.com/drdl/portal/svc/employee"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func formParams() employee.FormParams {
	return employee.FormParams{
		Values: emp.Draft{
			emp.FieldEmpName: `<b>John</b>`,
			emp.FieldGender:  "Female",
		},
		Errors: validator.ValidationErrors{
			{Field: emp.FieldPhone, Message: "Phone number is required"},
		},
		Action:         "/",
		ValidateAction: "/validate/",
	}
}

func TestFormPage(t *testing.T) {
	t.Parallel()

	v := views.New()
	html := renderString(t, v.Form().Page(employee.FormPageParams{
		Form:      formParams(),
		SearchURL: "/search",
	}))

	assert.Contains(t, html, "<title>Employee Management Portal</title>")
	assert.Contains(t, html, views.DefaultDataStarScript)
	assert.Contains(t, html, `href="/search"`)
	assert.Contains(t, html, "Personal Details")
	assert.Contains(t, html, "Role Details")
	assert.Contains(t, html, `id="employee-form"`)
	assert.Contains(t, html, `id="toast-container"`)
	assert.Contains(t, html, `id="employee-preview"`)
	assert.NotContains(t, html, "Current Form Data")
	assert.Contains(t, html, ">Add Employee</button>")

	for _, field := range emp.FieldNames() {
		assert.Contains(t, html, `name="`+field+`"`, field)
		assert.Contains(t, html, `id="`+field+`-error"`, field)
	}
}

func TestFormInputs(t *testing.T) {
	t.Parallel()

	html := renderString(t, views.New().Form().Form(formParams()))

	assert.Contains(t, html, `maxlength="6"`)
	assert.Contains(t, html, `maxlength="10"`)
	assert.Contains(t, html, `placeholder="Employee ID"`)
	assert.Contains(t, html, "Email (optional)")
	assert.Contains(t, html, `type="date"`)
	assert.Contains(t, html, `<option value="">Select</option>`)
	assert.Contains(t, html, `<option value="Female" selected>Female</option>`)
	assert.Contains(t, html, `<option value="Network">Network</option>`)
	assert.Contains(t, html, "data-on-blur=")
	assert.Contains(t, html, "data-on-change=")
	assert.Contains(t, html, `id="phone-error"`)
	assert.Contains(t, html, "Phone number is required")
	assert.Contains(t, html, "{contentType: 'form'}")

	t.Run("values are escaped", func(t *testing.T) {
		assert.NotContains(t, html, "<b>John</b>")
		assert.Contains(t, html, "&lt;b&gt;John&lt;/b&gt;")
	})
}

func TestFieldError(t *testing.T) {
	t.Parallel()

	v := views.New().Form()

	assert.Equal(t,
		`<span id="toDate-error" class="field-error" role="alert">To Date cannot be before From Date</span>`,
		renderString(t, v.FieldError(employee.FieldErrorParams{Field: emp.FieldToDate, Message: emp.MsgToDateBeforeStart})))

	assert.Equal(t,
		`<span id="empId-error" class="field-error" role="alert"></span>`,
		renderString(t, v.FieldError(employee.FieldErrorParams{Field: emp.FieldEmpID})))
}

func TestPreview(t *testing.T) {
	t.Parallel()

	email := "john@example.com"
	html := renderString(t, views.New().Form().Preview(employee.PreviewParams{Saved: emp.Payload{
		EmpID: "123456",
		Age:   30,
		Email: &email,
	}}))

	assert.Contains(t, html, `<section id="employee-preview" class="preview">`)
	assert.Contains(t, html, "Current Form Data (not saved):")
	assert.Contains(t, html, "&#34;empId&#34;: &#34;123456&#34;")
	assert.Contains(t, html, "&#34;age&#34;: 30")
}

func TestToast(t *testing.T) {
	t.Parallel()

	html := renderString(t, views.New().Form().Toast(employee.ToastParams{
		Kind:    employee.ToastSuccess,
		Message: employee.MsgSubmitted,
	}))

	assert.Equal(t, `<div class="toast toast-success" role="status">Employee data submitted successfully!</div>`, html)
}

func TestSearchPage(t *testing.T) {
	t.Parallel()

	v := views.New(views.WithTitle("DRDL Portal")).Search()
	html := renderString(t, v.Page(employee.SearchPageParams{
		Results: employee.SearchResultsParams{Query: "john"},
		Action:  "/search",
		FormURL: "/",
	}))

	assert.Contains(t, html, "<title>DRDL Portal</title>")
	assert.Contains(t, html, "<h2>Search Employees</h2>")
	assert.Contains(t, html, `placeholder="Enter employee name"`)
	assert.Contains(t, html, `value="john"`)
	assert.Contains(t, html, "Searching...")
	assert.Contains(t, html, `id="search-results"`)
	assert.NotContains(t, html, "No employees found.")
}

func TestSearchResults(t *testing.T) {
	t.Parallel()

	v := views.New().Search()

	t.Run("cards", func(t *testing.T) {
		html := renderString(t, v.Results(employee.SearchResultsParams{
			Query:    "john",
			Searched: true,
			Employees: []emp.Employee{
				{
					EmpID: "123456", EmpName: "John Smith", RoleName: "Team Lead", RoleNumber: "42",
					Directorate: "DIT", Division: "SDD", Phone: "9876543210", Age: 30, Gender: "Male",
					FromDate: "2024-01-01", Address: "12 MG Road", NAFlag: "N",
				},
				{EmpID: "654321", EmpName: "Johnny Doe", FromDate: "2020-01-01", ToDate: "2023-12-31"},
			},
		}))

		assert.Contains(t, html, "<h3>John Smith (123456)</h3>")
		assert.Contains(t, html, "<p>Role: Team Lead - 42</p>")
		assert.Contains(t, html, "<p>Directorate: DIT Division: SDD</p>")
		assert.Contains(t, html, "<p>Phone: 9876543210 | Age: 30 | Gender: Male</p>")
		assert.Contains(t, html, "<p>From: 2024-01-01 To: Current</p>")
		assert.Contains(t, html, "<p>From: 2020-01-01 To: 2023-12-31</p>")
		assert.Contains(t, html, "<p>Address: 12 MG Road</p>")
		assert.Contains(t, html, "<p>NA Flag: N</p>")
	})

	t.Run("empty search", func(t *testing.T) {
		html := renderString(t, v.Results(employee.SearchResultsParams{Query: "zed", Searched: true}))
		assert.Contains(t, html, "No employees found.")
	})

	t.Run("failed search", func(t *testing.T) {
		html := renderString(t, v.Results(employee.SearchResultsParams{Query: "zed", Searched: true, Failed: true}))
		assert.Equal(t, `<div id="search-results" class="results-list"></div>`, html)
	})
}

func TestErrorHandlerConfig(t *testing.T) {
	t.Parallel()

	cfg := views.New().ErrorHandlerConfig()

	assert.Equal(t, employee.ToastTarget, cfg.ToastTarget)
	assert.Equal(t, handler.PatchAppend, cfg.ToastMode)

	page := renderString(t, cfg.ErrorPage(handler.ErrorPageParams{
		Error:      "Not Found",
		StatusCode: 404,
		RequestID:  "req-1",
		RetryURL:   "/search",
	}))
	assert.Contains(t, page, "<p>Not Found</p>")
	assert.Contains(t, page, "Request ID: req-1")
	assert.Contains(t, page, `href="/search"`)

	toast := renderString(t, cfg.ErrorToast(handler.ErrorToastParams{Message: "bad_request", Type: "warning"}))
	assert.Equal(t, `<div class="toast toast-error" role="status">bad_request</div>`, toast)
}
