package employee

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/drdl/portal/handler"
	"github.com/drdl/portal/pkg/binder"
	"github.com/drdl/portal/pkg/clientip"
	"github.com/drdl/portal/pkg/logger"
	"github.com/drdl/portal/pkg/validator"
	emp "github.com/drdl/portal/svc/employee"
)

// Saver stores a validated employee record.
type Saver interface {
	Create(ctx context.Context, p emp.Payload) error
}

type FormService struct {
	engine       *emp.Engine
	saver        Saver
	views        *FormServiceViews
	errorHandler handler.ErrorHandler[handler.Context]
	settings     settings
}

type FormServiceViews struct {
	Page func(FormPageParams) templ.Component
	// Form must render an element with id "employee-form".
	Form func(FormParams) templ.Component
	// FieldError must render an element with id "<field>-error", even when
	// the message is empty, so a later patch can clear it.
	FieldError func(FieldErrorParams) templ.Component
	Toast      func(ToastParams) templ.Component
	// Preview must render an element with id "employee-preview".
	Preview func(PreviewParams) templ.Component
}

func NewFormService(
	engine *emp.Engine,
	saver Saver,
	views *FormServiceViews,
	errorHandler handler.ErrorHandler[handler.Context],
	opts ...Option,
) *FormService {
	s := newSettings(opts)
	s.logger = s.logger.With(logger.Component("employee_form"))

	return &FormService{
		engine:       engine,
		saver:        saver,
		views:        views,
		errorHandler: errorHandler,
		settings:     s,
	}
}

func (s *FormService) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	r.Post("/", handler.Wrap(s.submit,
		handler.WithBinders[handler.Context, emp.Form](binder.Form()),
		handler.WithErrorHandler[handler.Context, emp.Form](s.errorHandler),
	))

	// Blur and change events post the whole form so cross-field rules see
	// the current values.
	r.Post("/validate/{field}", handler.Wrap(s.validateField,
		handler.WithBinders[handler.Context, FieldRequest](
			binder.Path(chi.URLParam),
			binder.Form(),
		),
		handler.WithErrorHandler[handler.Context, FieldRequest](s.errorHandler),
	))

	return r
}

// FormParams contains data for rendering the employee form.
type FormParams struct {
	Values emp.Draft
	Errors validator.ValidationErrors
	// Action is the submit URL.
	Action string
	// ValidateAction is the per-field validation URL; append the field name.
	ValidateAction string
}

// FormPageParams contains data for rendering the add-employee page.
type FormPageParams struct {
	Form    FormParams
	Toast   *ToastParams
	Preview *PreviewParams
	// SearchURL links to the search page.
	SearchURL string
}

// FieldErrorParams contains data for rendering one field's error slot.
type FieldErrorParams struct {
	Field   string
	Message string
}

// PreviewParams contains the record last sent to the API.
type PreviewParams struct {
	Saved emp.Payload
}

// FieldRequest is a single-field validation request. The whole form is
// bound so rules depending on other fields can be evaluated.
type FieldRequest struct {
	Field string `path:"field" form:"-"`
	emp.Form
}

// dependents lists fields whose outcome changes when the key field does.
var dependents = map[string][]string{
	emp.FieldFromDate: {emp.FieldToDate},
}

func (s *FormService) page(ctx handler.Context, _ struct{}) handler.Response {
	return handler.Templ(s.views.Page(s.pageParams(s.formParams(emp.Draft{}))))
}

func (s *FormService) validateField(ctx handler.Context, req FieldRequest) handler.Response {
	if !s.engine.Has(req.Field) {
		return handler.Error(handler.ErrNotFound)
	}

	draft := req.Form.Draft()
	fields := append([]string{req.Field}, dependents[req.Field]...)

	patches := make([]handler.TemplPatch, 0, len(fields))
	for _, field := range fields {
		outcome := s.engine.ValidateField(field, draft.Get(field), draft)
		if !outcome.IsAccepted() {
			s.settings.logger.DebugContext(ctx, "field rejected", logger.Fields([]string{field}))
		}
		patches = append(patches, handler.Patch(s.views.FieldError(FieldErrorParams{
			Field:   field,
			Message: outcome.Reason(),
		})))
	}

	return handler.TemplMulti(patches...)
}

func (s *FormService) submit(ctx handler.Context, req emp.Form) handler.Response {
	draft := req.Draft()
	form := s.formParams(draft)

	if !s.allowSubmit(ctx) {
		return s.failed(form, MsgThrottled)
	}

	if errs := s.engine.Validate(draft); !errs.IsEmpty() {
		s.settings.logger.DebugContext(ctx, "employee form rejected", logger.Fields(errs.Fields()))
		form.Errors = errs
		return handler.TemplMultiPartial(
			s.views.Page(s.pageParams(form)),
			handler.Patch(s.views.Form(form)),
		)
	}

	payload, err := s.engine.Payload(draft)
	if err != nil {
		return handler.Error(err)
	}

	if err := s.saver.Create(ctx, payload); err != nil {
		return s.failed(form, saveFailureMessage(err))
	}

	// The form keeps its values after a successful save.
	toast := ToastParams{Kind: ToastSuccess, Message: MsgSubmitted}
	preview := PreviewParams{Saved: payload}
	page := s.pageParams(form)
	page.Toast = &toast
	page.Preview = &preview

	return handler.TemplMultiPartial(
		s.views.Page(page),
		handler.Patch(s.views.Form(form)),
		handler.Patch(s.views.Preview(preview)),
		toastPatch(s.views.Toast(toast)),
	)
}

// failed keeps the form as entered and shows an error toast.
func (s *FormService) failed(form FormParams, message string) handler.Response {
	toast := ToastParams{Kind: ToastError, Message: message}
	page := s.pageParams(form)
	page.Toast = &toast
	return handler.TemplMultiPartial(
		s.views.Page(page),
		handler.Patch(s.views.Form(form)),
		toastPatch(s.views.Toast(toast)),
	)
}

// allowSubmit takes a token for the client. Limiter failures let the
// submission through.
func (s *FormService) allowSubmit(ctx handler.Context) bool {
	if s.settings.limiter == nil {
		return true
	}

	ip := clientip.FromContext(ctx)
	if ip == "" {
		ip = clientip.GetIP(ctx.Request())
	}

	res, err := s.settings.limiter.Allow(ctx, ip)
	if err != nil {
		s.settings.logger.WarnContext(ctx, "submit limiter failed", logger.Error(err))
		return true
	}
	if res.Allowed() {
		return true
	}

	wait := res.RetryAfter(time.Now())
	s.settings.logger.InfoContext(ctx, "employee submission throttled",
		logger.ClientIP(ip),
		slog.Duration("retry_after", wait),
	)
	ctx.ResponseWriter().Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
	return false
}

func (s *FormService) formParams(d emp.Draft) FormParams {
	return FormParams{
		Values:         d,
		Action:         s.settings.path("/"),
		ValidateAction: s.settings.path("/validate/"),
	}
}

func (s *FormService) pageParams(form FormParams) FormPageParams {
	return FormPageParams{
		Form:      form,
		SearchURL: s.settings.path("/search"),
	}
}

func saveFailureMessage(err error) string {
	if errors.Is(err, emp.ErrSaveRejected) {
		return MsgSaveFailed
	}
	return MsgNetworkError
}
