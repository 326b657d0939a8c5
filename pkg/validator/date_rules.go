package validator

import (
	"fmt"
	"time"
)

// DateLayout is the wire format of HTML date inputs.
const DateLayout = time.DateOnly

// DateNotBefore validates value >= other for ISO (YYYY-MM-DD) date strings.
// The rule is satisfied when either side is empty: an unset bound
// constrains nothing. Unparseable inputs fall back to string comparison,
// which matches chronological order for well-formed ISO dates.
func DateNotBefore(field, value, other string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" || other == "" {
				return true
			}
			v, errV := time.Parse(DateLayout, value)
			o, errO := time.Parse(DateLayout, other)
			if errV != nil || errO != nil {
				return value >= other
			}
			return !v.Before(o)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("date must not be before %s", other),
			TranslationKey: "validation.date_not_before",
			TranslationValues: map[string]any{
				"field": field,
				"other": other,
			},
		},
	}
}
