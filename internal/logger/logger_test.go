package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	Setup("warn", &buf)
	t.Cleanup(func() { Setup("info", nil) })

	l := New().WithField("slot", "Guard 00:00-02:00")
	l.Info("hidden")
	l.Warn("slot left unfilled")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "slot left unfilled", entry["msg"])
	assert.Equal(t, "Guard 00:00-02:00", entry["slot"])
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
}

func TestContextRoundTrip(t *testing.T) {
	l := New().WithField("request_id", "abc")
	ctx := NewContext(context.Background(), l)

	assert.Same(t, l, FromContext(ctx))
	assert.NotNil(t, FromContext(context.Background()))
}
