package log_test

import (
	"bytes"
	"testing"

	"dired/internal/log"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	fn()
	return buf.String()
}

func TestLevels(t *testing.T) {
	out := capture(t, func() {
		log.Info("hello %s", "world")
		log.Warn("careful")
		log.Error("broken: %v", "badly")
	})

	assert.Contains(t, out, "hello world")
	assert.Contains(t, out, "careful")
	assert.Contains(t, out, "broken: badly")
}

func TestDebugGatedByLevel(t *testing.T) {
	out := capture(t, func() {
		log.SetDebug(false)
		log.Debug("invisible")
	})
	assert.NotContains(t, out, "invisible")

	out = capture(t, func() {
		log.SetDebug(true)
		log.Debug("visible")
		log.SetDebug(false)
	})
	assert.Contains(t, out, "visible")
}

func TestWithFields(t *testing.T) {
	out := capture(t, func() {
		log.WithFields(log.F("directory", "/tmp/x")).Info("watching")
	})
	assert.Contains(t, out, "watching")
	assert.Contains(t, out, "/tmp/x")
}
