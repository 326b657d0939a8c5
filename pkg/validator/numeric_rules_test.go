package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drdl/portal/pkg/validator"
)

func TestMin(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		assert.True(t, validator.Min("age", 18, 18).Check())
		assert.True(t, validator.Min("age", 40, 18).Check())
		assert.False(t, validator.Min("age", 17, 18).Check())
	})

	t.Run("float", func(t *testing.T) {
		assert.True(t, validator.Min("ratio", 0.5, 0.5).Check())
		assert.False(t, validator.Min("ratio", 0.49, 0.5).Check())
	})

	rule := validator.Min("age", 0, 18)
	assert.Equal(t, "must be at least 18", rule.Error.Message)
	assert.Equal(t, "validation.min", rule.Error.TranslationKey)
	assert.Equal(t, map[string]any{"field": "age", "min": 18}, rule.Error.TranslationValues)
}

func TestMax(t *testing.T) {
	assert.True(t, validator.Max("age", 80, 80).Check())
	assert.False(t, validator.Max("age", 81, 80).Check())

	rule := validator.Max("age", 0, 80)
	assert.Equal(t, "must be at most 80", rule.Error.Message)
	assert.Equal(t, "validation.max", rule.Error.TranslationKey)
}

