package algokit

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger_DefaultHandler(t *testing.T) {
	l := NewLogger(nil)
	assert.NotNil(t, l.Logger)
}

func TestNewLogger_CustomHandler(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, nil))

	l.Info("hello", "k", "v")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "k=v")
}

func TestNoopLogger_Discards(t *testing.T) {
	l := NoopLogger()
	l.Error("nothing happens")
	// No output expected; the handler level is unreachable.
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, nil)).WithComponent("cache")

	l.Info("evicted")
	assert.Contains(t, buf.String(), "component=cache")
}
