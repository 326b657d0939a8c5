// Package binder fills tagged request structs from HTTP requests.
//
// Each binder has the signature func(*http.Request, any) error and is meant
// to be passed to handler.WithBinders:
//
//   - Form(): urlencoded and multipart bodies, `form:"name"` tags
//   - Query(): URL query parameters, `query:"name"` tags
//   - Path(extract): route parameters, `path:"name"` tags, e.g. Path(chi.URLParam)
//
// Untagged exported fields match their lowercased name and `-` skips a field.
// Supported field types are strings, integers, floats, bools, pointers to
// those and slices for repeated parameters. Values are copied as sent;
// nothing is trimmed or split.
//
// A binder that does not apply to a request (Form on a GET) returns
// ErrBinderNotApplicable and the handler skips it. Other failures wrap
// ErrInvalidForm, ErrInvalidQuery, ErrInvalidPath, ErrMissingContentType or
// ErrUnsupportedMediaType.
package binder
