package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/GlebRadaev/gameshop/internal/config"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name          string
		logLvl        string
		expectedError bool
		enabled       zapcore.Level
		disabled      zapcore.Level
	}{
		{name: "Debug", logLvl: "debug", enabled: zapcore.DebugLevel, disabled: zapcore.DebugLevel - 1},
		{name: "Info", logLvl: "info", enabled: zapcore.InfoLevel, disabled: zapcore.DebugLevel},
		{name: "Warn", logLvl: "warn", enabled: zapcore.WarnLevel, disabled: zapcore.InfoLevel},
		{name: "Error", logLvl: "error", enabled: zapcore.ErrorLevel, disabled: zapcore.WarnLevel},
		{name: "Unknown level", logLvl: "verbose", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(&config.Config{LogLvl: tt.logLvl})

			if tt.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, zap.L().Core().Enabled(tt.enabled))
			assert.False(t, zap.L().Core().Enabled(tt.disabled))
		})
	}
}
