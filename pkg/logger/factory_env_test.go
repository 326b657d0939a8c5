package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drdl/portal/pkg/logger"
)

func TestWithEnvironment_Development(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithEnvironment("dev", "employee-portal"))
	log.Debug("msg")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "service=employee-portal")
	assert.Contains(t, out, "env=development")
}

func TestWithEnvironment_Production(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithEnvironment("prod", "employee-portal"))

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.Info("msg")
	entry := decode(t, buf)
	assert.Equal(t, "employee-portal", entry["service"])
	assert.Equal(t, "production", entry["env"])
}

func TestWithEnvironment_LevelOverride(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithEnvironment("production", "employee-portal"),
		logger.WithLevel(slog.LevelDebug),
	)
	log.Debug("visible")
	assert.Equal(t, "visible", decode(t, buf)["msg"])
}
