package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drdl/portal/pkg/validator"
)

func TestMatches(t *testing.T) {
	sixDigits := regexp.MustCompile(`^\d{6}$`)

	tests := []struct {
		value string
		want  bool
	}{
		{"123456", true},
		{"000000", true},
		{"12345", false},
		{"1234567", false},
		{"12345a", false},
		{"", false},
		{" 123456", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, validator.Matches("empId", tt.value, sixDigits, "6 digits").Check(), "value %q", tt.value)
	}

	rule := validator.Matches("empId", "", sixDigits, "6 digits")
	assert.Equal(t, "must match 6 digits pattern", rule.Error.Message)
	assert.Equal(t, "validation.regex_pattern", rule.Error.TranslationKey)
	assert.Equal(t, `^\d{6}$`, rule.Error.TranslationValues["pattern"])
}

func TestDigits(t *testing.T) {
	assert.True(t, validator.Digits("roleNumber", "0").Check())
	assert.True(t, validator.Digits("roleNumber", "123456").Check())
	assert.False(t, validator.Digits("roleNumber", "").Check())
	assert.False(t, validator.Digits("roleNumber", "12a").Check())
	assert.False(t, validator.Digits("roleNumber", "-12").Check())
	assert.False(t, validator.Digits("roleNumber", "1.5").Check())
	assert.False(t, validator.Digits("roleNumber", "١٢").Check(), "non-ASCII digits are rejected")

	assert.Equal(t, "validation.digits", validator.Digits("roleNumber", "").Error.TranslationKey)
}

func TestNoRepeatedLetters(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "no repeats", value: "John", want: true},
		{name: "double letters", value: "Joohnn", want: true},
		{name: "triple letters", value: "Joooh", want: false},
		{name: "triple at end", value: "Jonnn", want: false},
		{name: "mixed case triple", value: "Aaab", want: false},
		{name: "mixed case triple inside", value: "BoOo", want: false},
		{name: "space breaks the run", value: "Ann Nnn", want: false},
		{name: "space between doubles", value: "Ann Na", want: true},
		{name: "empty", value: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.NoRepeatedLetters("empName", tt.value, 2).Check())
		})
	}

	rule := validator.NoRepeatedLetters("empName", "", 2)
	assert.Equal(t, "must not repeat a letter more than 2 times in a row", rule.Error.Message)
}

func TestNotAllUpper(t *testing.T) {
	assert.True(t, validator.NotAllUpper("empName", "John").Check())
	assert.True(t, validator.NotAllUpper("empName", "john").Check())
	assert.False(t, validator.NotAllUpper("empName", "JOHN").Check())
	assert.False(t, validator.NotAllUpper("empName", "JOHN DOE").Check())
}

func TestNotAllLower(t *testing.T) {
	assert.True(t, validator.NotAllLower("empName", "John").Check())
	assert.True(t, validator.NotAllLower("empName", "JOHN").Check())
	assert.False(t, validator.NotAllLower("empName", "john").Check())
	assert.False(t, validator.NotAllLower("empName", "john doe").Check())
}
