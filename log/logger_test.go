package log_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	. "github.com/locknock/locknock-go/log"
)

func Test_genTrackID(t *testing.T) {
	for i := 0; i < 1000; i++ {
		_, err := uuid.Parse(GenTrackID())
		require.NoError(t, err)
	}
}

func TestTrackMonitorID(t *testing.T) {
	ctx := context.Background()
	require.Empty(t, TrackMonitorID(ctx))
	ctx = WithTrackMonitorID(ctx)
	_, err := uuid.Parse(TrackMonitorID(ctx))
	require.NoError(t, err)
}
