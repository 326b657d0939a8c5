// Package handler turns typed functions into http.HandlerFuncs for
// server-rendered pages that are progressively enhanced with DataStar.
//
// A handler receives a Context and a request struct already filled by the
// configured binders, and returns a Response:
//
//	type SearchRequest struct {
//		Name string `query:"name"`
//	}
//
//	search := func(ctx handler.Context, req SearchRequest) handler.Response {
//		found, err := directory.Search(ctx, req.Name)
//		...
//		return handler.TemplPartial(views.Results(found), views.SearchPage(req.Name, found),
//			handler.WithTarget("#search-results"))
//	}
//
//	r.Get("/search", handler.Wrap(search,
//		handler.WithBinders[handler.Context, SearchRequest](binder.Query()),
//		handler.WithErrorHandler[handler.Context, SearchRequest](errorHandler),
//	))
//
// # Responses
//
// Templ renders a templ component as HTML, or as a DataStar SSE patch when
// IsDataStar reports the request came from a DataStar action. TemplPartial
// and TemplMultiPartial send a fragment (or several) to DataStar and a full
// page to plain requests, so every route works without JavaScript.
//
// # Errors
//
// Binding failures are joined with ErrBadRequest. NewErrorHandler maps
// HTTPError and validator.ValidationErrors to a status, logs client errors
// at Warn and everything else at Error, then renders an error page or a
// toast patch depending on the request kind.
package handler
