// Package employee holds the employee record rules and the client that talks
// to the employee API.
//
// The Engine decides whether a draft record may be submitted. It evaluates an
// ordered list of rules per field; the first failing rule wins and its message
// is reported. Rules are pure functions of the field value and the draft, so a
// single Engine is shared by all requests.
//
//	engine := employee.NewEngine(nil) // default rules
//
//	out := engine.ValidateField(employee.FieldAge, "17", draft)
//	out.Reason() // "Minimum age is 18"
//
//	if errs := engine.Validate(draft); !errs.IsEmpty() {
//		// render errs next to the inputs
//	}
//
//	payload, err := engine.Payload(draft) // ErrNotSubmittable unless every field passes
//
// Directory sends accepted payloads to the API and searches employees by name.
// Save failures are reported as ErrSaveRejected (the API answered with a
// non-2xx status) or ErrNetwork (no usable answer). Neither is a validation
// concern.
package employee
