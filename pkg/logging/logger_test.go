package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/todoaskit/modelpresets/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	logging.SetDefault(logger)

	// Installing a debug-level logger lowers the global level with it,
	// so debug events are not filtered by a stricter global setting.
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("Expected global level %v, got %v", zerolog.DebugLevel, zerolog.GlobalLevel())
	}

	logging.Debug().Msg("debug message")
	logging.Info().Msg("info message")
	logging.Warn().Msg("warning message")
	logging.Error().Msg("error message")

	output := buf.String()
	if !strings.Contains(output, "info message") {
		t.Errorf("Expected info message in output, got: %s", output)
	}
	if !strings.Contains(output, "debug message") {
		t.Errorf("Expected debug message in output, got: %s", output)
	}
}

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithPreset(ctx, "SMALL_FC_MNIST")
	ctx = logging.WithOperation(ctx, "resolve")

	logger := logging.FromContext(ctx)
	logger.Info().Msg("test message")

	testLogger.AssertContains(t, "SMALL_FC_MNIST")
	testLogger.AssertContains(t, "resolve")
	testLogger.AssertContains(t, "test message")
}

func TestFromContextFallback(t *testing.T) {
	// A context without a logger yields the default, never nil.
	if logging.FromContext(context.Background()) == nil {
		t.Fatal("FromContext returned nil for empty context")
	}
	if logging.FromContext(nil) == nil { //nolint:staticcheck // exercising nil handling
		t.Fatal("FromContext returned nil for nil context")
	}
}

func TestNewLoggerFromConfig(t *testing.T) {
	tests := []struct {
		name  string
		cfg   *logging.Config
		level zerolog.Level
	}{
		{"debug level", &logging.Config{Level: "debug", Format: "json"}, zerolog.DebugLevel},
		{"warn level", &logging.Config{Level: "warn", Format: "json"}, zerolog.WarnLevel},
		{"unknown level falls back to info", &logging.Config{Level: "bogus", Format: "json"}, zerolog.InfoLevel},
		{"nil config", nil, zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := logging.NewLoggerFromConfig(tt.cfg)
			if logger.GetLevel() != tt.level {
				t.Errorf("expected level %v, got %v", tt.level, logger.GetLevel())
			}
		})
	}
}
