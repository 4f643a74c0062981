package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"textkit/pkg/logger"
)

func TestSetup(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment} {
		t.Run(env, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(env)
			})
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestGetReturnsContextLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	custom := zap.NewNop()
	ctx := logger.WithLogger(context.Background(), custom)

	require.Same(t, custom, logger.Get(ctx))
	require.NotSame(t, custom, logger.Get(context.Background()))
}

func TestWithFields(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := logger.WithFields(context.Background(), zap.String("tool", "unicode"))
	require.NotNil(t, logger.Get(ctx))

	// logging through the derived context must not panic
	require.NotPanics(t, func() {
		logger.Info(ctx, "fields attached")
	})
}

func TestSyncDoesNotPanic(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	require.NotPanics(t, func() {
		logger.Sync(context.Background())
	})
}
