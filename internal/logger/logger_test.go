package logger

import (
	"testing"

	"github.com/TudorHulban/slotledger/internal/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Run(
		"1. development",
		func(t *testing.T) {
			l, errNew := New(
				&config.Config{
					Env:      "development",
					LogLevel: "debug",
				},
			)
			require.NoError(t, errNew)
			require.True(t, l.Core().Enabled(zap.DebugLevel))
		},
	)

	t.Run(
		"2. production",
		func(t *testing.T) {
			l, errNew := New(
				&config.Config{
					Env:      "production",
					LogLevel: "warn",
				},
			)
			require.NoError(t, errNew)
			require.False(t, l.Core().Enabled(zap.InfoLevel))
			require.True(t, l.Core().Enabled(zap.WarnLevel))
		},
	)

	t.Run(
		"3. bad level",
		func(t *testing.T) {
			l, errNew := New(
				&config.Config{
					LogLevel: "loud",
				},
			)
			require.Error(t, errNew)
			require.Nil(t, l)
		},
	)
}
