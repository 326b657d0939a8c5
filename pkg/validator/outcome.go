package validator

// Outcome is the result of evaluating the rules of one field:
// either accepted, or rejected with exactly one reason.
// The zero value is Accepted.
type Outcome struct {
	rejection *ValidationError
}

// Accepted returns an accepting outcome.
func Accepted() Outcome {
	return Outcome{}
}

// Rejected returns an outcome carrying err as the rejection reason.
func Rejected(err ValidationError) Outcome {
	return Outcome{rejection: &err}
}

// IsAccepted reports whether no rule failed.
func (o Outcome) IsAccepted() bool {
	return o.rejection == nil
}

// Reason returns the human readable rejection message, or "" when accepted.
func (o Outcome) Reason() string {
	if o.rejection == nil {
		return ""
	}
	return o.rejection.Message
}

// Rejection returns the failing rule's error and true, or false when accepted.
func (o Outcome) Rejection() (ValidationError, bool) {
	if o.rejection == nil {
		return ValidationError{}, false
	}
	return *o.rejection, true
}

// AddTo appends the rejection, if any, to errs.
func (o Outcome) AddTo(errs *ValidationErrors) {
	if o.rejection != nil {
		errs.Add(*o.rejection)
	}
}
