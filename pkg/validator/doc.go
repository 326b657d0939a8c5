// Package validator provides small, composable validation rules and the
// result types used to report them.
//
// A Rule binds a value to a Check function plus the ValidationError reported
// when the check fails. Rules are built by plain constructor functions
// (Required, MaxLen, Matches, OneOf, DateNotBefore, ...) and evaluated with
// First, which runs them in order and returns an Outcome carrying the first
// failure only, so the user sees one reason per field. Outcomes of several
// fields are collected into ValidationErrors with Outcome.AddTo.
//
// # Usage
//
//	outcome := validator.First(
//		validator.Required("empId", raw).WithMessage("Employee ID is required"),
//		validator.Matches("empId", raw, sixDigits, "6 digits").
//			WithMessage("Employee ID must be exactly 6 digits, numbers only"),
//	)
//	if !outcome.IsAccepted() {
//		fmt.Println(outcome.Reason())
//	}
//
// # Error Handling
//
// ValidationErrors implements error, so a whole pass can be returned up the
// stack and recovered with ExtractValidationErrors or errors.As. Individual
// field messages are available through Has, Get, First, Fields and Map.
//
// Rules hold no shared state; everything in the package is safe for
// concurrent use. Patterns passed to Matches must be compiled once by the
// caller.
package validator
