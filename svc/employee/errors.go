package employee

import "errors"

var (
	ErrNotSubmittable = errors.New("employee record is not submittable")
	ErrSaveRejected   = errors.New("failed to save employee")
	ErrNetwork        = errors.New("network error")
	ErrSearchFailed   = errors.New("employee search failed")
)
