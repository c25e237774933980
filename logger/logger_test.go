package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", DEBUG.String())
	assert.Equal(t, "INFO", INFO.String())
	assert.Equal(t, "WARN", WARN.String())
	assert.Equal(t, "ERROR", ERROR.String())
	assert.Equal(t, "OFF", OFF.String())
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(WARN, &buf)

	log.Debug("hidden %d", 1)
	log.Info("hidden too")
	assert.Empty(t, buf.String())

	log.Warn("count=%d", 7)
	assert.Contains(t, buf.String(), "[WARN] count=7")

	log.Error("boom")
	assert.Contains(t, buf.String(), "[ERROR] boom")
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(ERROR, &buf)

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.SetLevel(DEBUG)
	log.Info("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestDiscardLogger(t *testing.T) {
	log := NewDiscardLogger()
	log.Debug("x")
	log.Info("x")
	log.Warn("x")
	log.Error("x")
	log.SetLevel(DEBUG)
}

func TestDefaultLoggerSwap(t *testing.T) {
	prev := GetDefault()
	defer SetDefault(prev)

	var buf bytes.Buffer
	SetDefault(NewLogger(INFO, &buf))
	Info("hello %s", "world")
	assert.Contains(t, buf.String(), "hello world")
}
