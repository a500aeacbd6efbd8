package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"thirdcoast.systems/filtergraph/internal/config"
)

func TestBackoffGrows(t *testing.T) {
	require.Equal(t, dbOpenBackoffBase, backoff(0))
	require.Greater(t, backoff(2), backoff(1))
	require.InDelta(t, 1.618, float64(backoff(1))/float64(backoff(0)), 0.001)
}

func TestSleepHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, sleep(ctx, time.Hour), context.Canceled)
	require.NoError(t, sleep(context.Background(), time.Millisecond))
}

func TestOpenDBPoolWithRetry_BadDSN(t *testing.T) {
	_, err := OpenDBPoolWithRetry(context.Background(), config.Config{DatabaseDSN: "postgres://user@localhost:notaport/db", DatabaseRetries: 1})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse DSN")
}
