package binder

import (
	"fmt"
	"net/http"
)

// Path binds route parameters into fields tagged `path:"name"`, using
// extract to read them from the request. Empty parameters are skipped.
//
//	binder.Path(chi.URLParam)
func Path(extract func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extract == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}

		rv, err := structTarget(v, ErrInvalidPath)
		if err != nil {
			return err
		}

		values := make(map[string][]string)
		for _, name := range paramNames(rv.Type(), "path") {
			if value := extract(r, name); value != "" {
				values[name] = []string{value}
			}
		}

		return bindToStruct(v, "path", values, ErrInvalidPath)
	}
}
