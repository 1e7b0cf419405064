package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultLoggerIsNoop(t *testing.T) {
	require.NotNil(t, Logger)
	assert.NotPanics(t, func() { Logger.Infow("dropped", FieldCount, 1) })
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
		verbose    bool
		wantLevel  zapcore.Level
	}{
		{"console", false, false, zapcore.InfoLevel},
		{"console verbose", false, true, zapcore.DebugLevel},
		{"json", true, false, zapcore.InfoLevel},
		{"json verbose", true, true, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saved := Logger
			t.Cleanup(func() {
				Logger = saved
				JSONOutput = false
			})

			require.NoError(t, Initialize(tt.jsonOutput, tt.verbose))
			assert.Equal(t, tt.jsonOutput, JSONOutput)
			assert.True(t, Logger.Desugar().Core().Enabled(tt.wantLevel))
			if !tt.verbose {
				assert.False(t, Logger.Desugar().Core().Enabled(zapcore.DebugLevel))
			}
		})
	}
}

func TestNamedAddsComponent(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	saved := Logger
	Logger = zap.New(core).Sugar()
	t.Cleanup(func() { Logger = saved })

	Named("store").Infow("saved filter", FieldName, "adults")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "store", fields[FieldComponent])
	assert.Equal(t, "adults", fields[FieldName])
}
