package logger

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name     string
		verbose  bool
		expected zerolog.Level
	}{
		{name: "default level is info", verbose: false, expected: zerolog.InfoLevel},
		{name: "verbose lowers level to debug", verbose: true, expected: zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLogger("test", tt.verbose)
			require.NotNil(t, l)
			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	// Должен быть no-op: не паникует и ничего не пишет
	l.Info().Msg("should not be written")
	l.Error().Msg("should not be written either")
}

func TestGetChildLogger_NotNil(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestWithRunID_NotNil(t *testing.T) {
	parent := Nop()
	child := parent.WithRunID("0198f3a0-0000-7000-8000-000000000000")

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_NeverNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)

	nop := zerolog.Nop()
	ctx := nop.WithContext(context.Background())
	l = FromContext(ctx)
	require.NotNil(t, l)
}
