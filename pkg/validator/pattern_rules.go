package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var digitsRegex = regexp.MustCompile(`^\d+$`)

// Matches validates value against a precompiled pattern.
// description is used in the default message, e.g. "6 digits".
func Matches(field, value string, pattern *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"pattern":     pattern.String(),
				"description": description,
			},
		},
	}
}

// Digits validates that value is a non-empty run of ASCII digits.
func Digits(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return digitsRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain digits only",
			TranslationKey: "validation.digits",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NoRepeatedLetters rejects a letter repeated more than max times in a row.
// Comparison is case-insensitive, so "aAa" counts as a run of three.
func NoRepeatedLetters(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return longestLetterRun(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must not repeat a letter more than %d times in a row", max),
			TranslationKey: "validation.repeated_letters",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// NotAllUpper rejects values whose letters are all uppercase.
func NotAllUpper(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.ToUpper(value) != value
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not be all uppercase",
			TranslationKey: "validation.not_all_upper",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NotAllLower rejects values whose letters are all lowercase.
func NotAllLower(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.ToLower(value) != value
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not be all lowercase",
			TranslationKey: "validation.not_all_lower",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func longestLetterRun(value string) int {
	longest, run := 0, 0
	var prev rune
	for _, r := range value {
		if !unicode.IsLetter(r) {
			run, prev = 0, 0
			continue
		}
		r = unicode.ToLower(r)
		if run > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		prev = r
		longest = max(longest, run)
	}
	return longest
}
