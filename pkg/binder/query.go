package binder

import (
	"fmt"
	"net/http"
	"net/url"
)

// Query binds URL query parameters into fields tagged `query:"name"`.
// A malformed query string fails with ErrInvalidQuery.
//
//	type SearchRequest struct {
//		Name string `query:"name"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		values, err := url.ParseQuery(r.URL.RawQuery)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidQuery, err)
		}
		return bindToStruct(v, "query", values, ErrInvalidQuery)
	}
}
