package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drdl/portal/pkg/validator"
)

func TestDateNotBefore(t *testing.T) {
	tests := []struct {
		name  string
		value string
		other string
		want  bool
	}{
		{name: "before", value: "2024-01-05", other: "2024-01-10", want: false},
		{name: "equal", value: "2024-01-10", other: "2024-01-10", want: true},
		{name: "after", value: "2024-02-01", other: "2024-01-10", want: true},
		{name: "empty value", value: "", other: "2024-01-10", want: true},
		{name: "empty other", value: "2024-01-05", other: "", want: true},
		{name: "both empty", value: "", other: "", want: true},
		{name: "across years", value: "2023-12-31", other: "2024-01-01", want: false},
		{name: "malformed falls back to string order", value: "2024-13-40", other: "2024-01-01", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.DateNotBefore("toDate", tt.value, tt.other).Check())
		})
	}

	rule := validator.DateNotBefore("toDate", "2024-01-05", "2024-01-10")
	assert.Equal(t, "date must not be before 2024-01-10", rule.Error.Message)
	assert.Equal(t, "validation.date_not_before", rule.Error.TranslationKey)
}
