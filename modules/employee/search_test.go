package employee_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	employee "github.com/drdl/portal/modules/employee"
	emp "github.com/drdl/portal/svc/employee"
)

func newSearchService(searcher employee.Searcher) http.Handler {
	return employee.NewSearchService(searcher, searchViews(), nil).Handle()
}

func searchRequest(target string, dataStar bool) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if dataStar {
		markDataStar(req)
	}
	return req
}

func TestSearchService(t *testing.T) {
	t.Parallel()

	found := []emp.Employee{
		{EmpID: "123456", EmpName: "John Smith"},
		{EmpID: "654321", EmpName: "Johnny Doe"},
	}

	t.Run("initial page", func(t *testing.T) {
		t.Parallel()

		searcher := &fakeSearcher{}
		w := httptest.NewRecorder()
		newSearchService(searcher).ServeHTTP(w, searchRequest("/", false))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `search page query="" results=0 failed=false toast=""`, w.Body.String())
		assert.Empty(t, searcher.names, "empty query must not reach the api")
	})

	t.Run("datastar search patches results", func(t *testing.T) {
		t.Parallel()

		searcher := &fakeSearcher{found: found}
		w := httptest.NewRecorder()
		newSearchService(searcher).ServeHTTP(w, searchRequest("/?name=+john+", true))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"john"}, searcher.names)
		assert.Equal(t, 1, strings.Count(w.Body.String(), "event: datastar-patch-elements"))
		assert.Contains(t, w.Body.String(), `<div id="search-results">John Smith;Johnny Doe</div>`)
	})

	t.Run("plain search renders the page", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		newSearchService(&fakeSearcher{found: found}).ServeHTTP(w, searchRequest("/?name=john", false))

		assert.Equal(t, `search page query="john" results=2 failed=false toast=""`, w.Body.String())
	})

	t.Run("failure clears results and shows a toast", func(t *testing.T) {
		t.Parallel()

		searcher := &fakeSearcher{found: found, err: emp.ErrSearchFailed}
		w := httptest.NewRecorder()
		newSearchService(searcher).ServeHTTP(w, searchRequest("/?name=john", true))

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Equal(t, 2, strings.Count(body, "event: datastar-patch-elements"))
		assert.Contains(t, body, `<div id="search-results"></div>`)
		assert.Contains(t, body, `<div class="toast toast-error">`+employee.MsgSearchFailed+`</div>`)
	})

	t.Run("plain failure keeps the page", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		newSearchService(&fakeSearcher{err: emp.ErrSearchFailed}).ServeHTTP(w, searchRequest("/?name=john", false))

		assert.Equal(t, `search page query="john" results=0 failed=true toast="`+employee.MsgSearchFailed+`"`, w.Body.String())
	})

	t.Run("malformed query is a bad request", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		newSearchService(&fakeSearcher{}).ServeHTTP(w, searchRequest("/?name=%zz", false))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
