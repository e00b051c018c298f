package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewWithWriter(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{name: "default level hides debug", debug: false, wantDebug: false},
		{name: "debug level shows debug", debug: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(&buf, tt.debug)

			log.Debug("inferred record", zap.String("name", "User"))
			log.Info("informational")
			log.Warn("keeping unformatted output")
			_ = log.Sync()

			out := buf.String()
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("inferred record")), out)
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("informational")), out)
			assert.Contains(t, out, "WARN")
			assert.Contains(t, out, "keeping unformatted output")
		})
	}
}

func TestNewWithWriter_Fields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, true)

	log.Debug("inferred record", zap.String("name", "User"), zap.Int("fields", 3))

	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), `"name": "User"`)
	assert.Contains(t, buf.String(), `"fields": 3`)
}

func TestNew(t *testing.T) {
	log := New(false)
	assert.NotNil(t, log)
	assert.False(t, log.Core().Enabled(zap.InfoLevel))
	assert.True(t, log.Core().Enabled(zap.WarnLevel))

	log = New(true)
	assert.True(t, log.Core().Enabled(zap.DebugLevel))
}
