package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLoggerWithWriter(&buf, "warn")

	l.Infof("skipped %d", 1)
	assert.Zero(t, buf.Len())

	l.Errorf(errors.New("boom"), "failed to %s", "load")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "failed to load", entry["msg"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "storefront", entry["service"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel(" Debug ").String())
	assert.Equal(t, "WARN", parseLevel("warning").String())
	assert.Equal(t, "INFO", parseLevel("").String())
}
