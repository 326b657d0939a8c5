package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// TemplComponent matches templ.Component.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

// TemplOption configures how a component is patched into the page.
type TemplOption = datastar.PatchElementOption

// WithTarget patches the element matching selector instead of the element
// with the component's root id.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component is merged into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is one component of a TemplMulti response.
type TemplPatch struct {
	Component TemplComponent
	Options   []TemplOption
}

// Patch creates a TemplPatch.
func Patch(component TemplComponent, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

type templResponse struct {
	component TemplComponent
	options   []TemplOption
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).PatchElementTempl(t.component, t.options...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.component.Render(r.Context(), w)
}

// Templ renders component as an SSE patch for DataStar requests and as
// plain HTML otherwise.
func Templ(component TemplComponent, opts ...TemplOption) Response {
	return templResponse{component: component, options: opts}
}

type templPartialResponse struct {
	partial TemplComponent
	full    TemplComponent
	options []TemplOption
}

func (t templPartialResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).PatchElementTempl(t.partial, t.options...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.full.Render(r.Context(), w)
}

// TemplPartial patches partial for DataStar requests and renders the full
// page for plain requests, so the same route serves both.
//
//	return handler.TemplPartial(
//		views.SearchResults(found),
//		views.SearchPage(query, found),
//		handler.WithTarget("#search-results"),
//	)
func TemplPartial(partial, full TemplComponent, opts ...TemplOption) Response {
	return templPartialResponse{partial: partial, full: full, options: opts}
}

type templMultiResponse struct {
	patches []TemplPatch
	full    TemplComponent
}

func (t templMultiResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, patch := range t.patches {
			if err := sse.PatchElementTempl(patch.Component, patch.Options...); err != nil {
				return err
			}
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.full != nil {
		return t.full.Render(r.Context(), w)
	}
	for _, patch := range t.patches {
		if err := patch.Component.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

// TemplMulti sends each patch as its own SSE event for DataStar requests.
// Plain requests get the components concatenated in order.
func TemplMulti(patches ...TemplPatch) Response {
	return templMultiResponse{patches: patches}
}

// TemplMultiPartial is TemplMulti for DataStar requests and renders full
// for plain requests.
//
//	return handler.TemplMultiPartial(views.Page(state),
//		handler.Patch(views.FormErrors(errs), handler.WithTarget("#employee-form")),
//		handler.Patch(views.Toast(msg), handler.WithTarget("#toast-container"), handler.WithPatchMode(handler.PatchAppend)),
//	)
func TemplMultiPartial(full TemplComponent, patches ...TemplPatch) Response {
	return templMultiResponse{patches: patches, full: full}
}
