package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drdl/portal/pkg/validator"
)

func TestOutcome(t *testing.T) {
	t.Run("zero value is accepted", func(t *testing.T) {
		var o validator.Outcome
		assert.True(t, o.IsAccepted())
		assert.Empty(t, o.Reason())

		_, rejected := o.Rejection()
		assert.False(t, rejected)
	})

	t.Run("rejected carries the error", func(t *testing.T) {
		o := validator.Rejected(validator.ValidationError{
			Field:          "toDate",
			Message:        "To Date cannot be before From Date",
			TranslationKey: "validation.date_not_before",
		})

		assert.False(t, o.IsAccepted())
		assert.Equal(t, "To Date cannot be before From Date", o.Reason())

		verr, rejected := o.Rejection()
		assert.True(t, rejected)
		assert.Equal(t, "toDate", verr.Field)
		assert.Equal(t, "validation.date_not_before", verr.TranslationKey)
	})

	t.Run("AddTo only appends rejections", func(t *testing.T) {
		var errs validator.ValidationErrors
		validator.Accepted().AddTo(&errs)
		assert.True(t, errs.IsEmpty())

		validator.Rejected(validator.ValidationError{Field: "age", Message: "Age is required"}).AddTo(&errs)
		assert.Equal(t, []string{"Age is required"}, errs.Get("age"))
	})

	t.Run("outcomes are comparable by reason", func(t *testing.T) {
		a := validator.First(validator.Required("empId", ""))
		b := validator.First(validator.Required("empId", ""))
		assert.Equal(t, a.Reason(), b.Reason())
		assert.Equal(t, a.IsAccepted(), b.IsAccepted())
	})
}
